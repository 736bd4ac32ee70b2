package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token purposes. Access and refresh tokens share a signing scheme but
// carry a token_type claim, and verification demands the expected
// purpose, so one can never be replayed as the other.
const (
	TokenPurposeAccess  = "access"
	TokenPurposeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid or expired token")

func GenerateToken(userID uint, purpose string, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":        strconv.FormatUint(uint64(userID), 10),
		"token_type": purpose,
		"jti":        uuid.NewString(),
		"exp":        time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken checks signature, expiry and purpose, and returns the
// subject user id.
func VerifyToken(tokenString, purpose string, secret []byte) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	if tokenType, _ := claims["token_type"].(string); tokenType != purpose {
		return 0, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}
