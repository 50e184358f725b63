package middleware

import (
	"OctoUptime/internal/pkg/jwt"
	"OctoUptime/internal/pkg/logger"
	"OctoUptime/internal/pkg/permission"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Paths that don't require auth
var excludedPaths = map[string]bool{
	"/api/auth/login": true,
	"/":               true, // Root health check endpoint
	"/health":         true,
}

// JWTAuthMiddleware validates bearer tokens and stores the claims in the
// context for permission checks
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		currentPath := c.Request.URL.Path
		if excludedPaths[currentPath] {
			c.Next()
			return
		}

		token := ""
		// Browsers cannot set headers on WebSocket upgrades, so the token may come as a query param
		if strings.EqualFold(c.Request.Header.Get("Upgrade"), "websocket") {
			token = c.Query("token")
		}

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
				return
			}
			token = parts[1]
		}

		claims, err := jwt.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.Warn("Invalid JWT token",
				logger.Err(err),
				logger.String("path", currentPath))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("username", claims.Username)
		c.Set(permission.ClaimsKey, claims)
		c.Next()
	}
}
