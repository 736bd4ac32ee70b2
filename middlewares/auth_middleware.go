package middlewares

import (
	"net/http"
	"strings"

	"github.com/dizzyfrogs/chunklog/config"
	"github.com/dizzyfrogs/chunklog/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller from a bearer access token.
// Refresh tokens are rejected here; their purpose claim does not match.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.VerifyToken(tokenString, utils.TokenPurposeAccess, []byte(cfg.JWTSecret))
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
