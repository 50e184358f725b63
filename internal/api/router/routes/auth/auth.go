package auth

import (
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/jwt"
	"OctoUptime/internal/pkg/logger"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthRegistrar registers authentication routes
type AuthRegistrar struct{}

// Register implements the RouteRegistrar interface
func (r *AuthRegistrar) Register(engine *gin.Engine, config *config.Config) error {
	authGroup := engine.Group("/api/auth")
	{
		authGroup.POST("/login", func(c *gin.Context) {
			var credentials struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}

			if err := c.BindJSON(&credentials); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
				return
			}

			if !validCredentials(config.Agent.Auth, credentials.Username, credentials.Password) {
				logger.Warn("Failed authentication attempt",
					logger.String("username", credentials.Username),
					logger.String("ip", c.ClientIP()))

				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid credentials",
				})
				return
			}

			tokenExpiration := 24 * time.Hour
			if config.API.Auth.JWTExpiration > 0 {
				tokenExpiration = time.Duration(config.API.Auth.JWTExpiration) * time.Second
			}

			token, err := jwt.GenerateToken(credentials.Username, config.Agent.Auth.Permissions, config.API.Auth.JWTSecret, tokenExpiration)
			if err != nil {
				logger.Error("Failed to generate token", logger.Err(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"status":      "success",
				"token":       token,
				"expires_in":  tokenExpiration.Seconds(),
				"permissions": config.Agent.Auth.Permissions,
			})
		})
	}

	return nil
}

// validCredentials checks against the bcrypt hash when one is configured,
// otherwise against the plain password
func validCredentials(auth config.AuthConfig, username, password string) bool {
	if auth.User == "" || subtle.ConstantTimeCompare([]byte(username), []byte(auth.User)) != 1 {
		return false
	}
	if auth.PassHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(auth.PassHash), []byte(password)) == nil
	}
	if auth.Pass == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(auth.Pass)) == 1
}
