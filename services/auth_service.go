package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dizzyfrogs/chunklog/config"
	"github.com/dizzyfrogs/chunklog/models"
	"github.com/dizzyfrogs/chunklog/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Register creates an account. The email is checked before the
// username so a request failing both reports the email collision.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:      username,
		Email:         email,
		PasswordHash:  hash,
		ActivityLevel: models.ActivitySedentary,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Login matches the identifier as an email first, then as a username.
// Unknown identifier and wrong password produce the same error so
// callers cannot probe for accounts.
func (s *AuthService) Login(identifier, password string) (*TokenPair, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	var user models.User
	err := s.db.Where("email = ?", identifier).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("username = ?", identifier).First(&user).Error
	}
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(user.ID)
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	userID, err := utils.VerifyToken(refreshToken, utils.TokenPurposeRefresh, []byte(s.cfg.JWTSecret))
	if err != nil {
		return "", ErrInvalidToken
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return "", ErrInvalidToken
	}

	return utils.GenerateToken(user.ID, utils.TokenPurposeAccess, []byte(s.cfg.JWTSecret), s.cfg.AccessTokenTTL)
}

func (s *AuthService) issueTokenPair(userID uint) (*TokenPair, error) {
	secret := []byte(s.cfg.JWTSecret)

	access, err := utils.GenerateToken(userID, utils.TokenPurposeAccess, secret, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := utils.GenerateToken(userID, utils.TokenPurposeRefresh, secret, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
