package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards routes with a single static bearer token. An empty
// token disables the check, which is the default for a local single-user install.
func AuthMiddleware(apiToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiToken == "" {
			c.Next()
			return
		}
		logger := GetLoggerFromCtx(c.Request.Context())

		token := c.GetHeader("x-api-key")
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				logger.Warn("Authorization header missing")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				logger.Warn("Authorization header format invalid")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
				return
			}
			token = parts[1]
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(apiToken)) != 1 {
			logger.Warn("Invalid API token", slog.String("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(string(clientIDKey), c.ClientIP())
		c.Next()
	}
}

// GetClientIDFromContext returns the identity recorded by AuthMiddleware, if any.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(string(clientIDKey))
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
