package middleware

import (
	"errors"
	"net/http"
	"strings"

	"quiz-admin-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and stores the subject uid on the
// request context.
func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		uid, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("uid", uid)
		c.Next()
	}
}

// AdminAuth resolves the identity behind the token and runs the admin
// authorization check. A denial stops the request before any panel data is
// read.
func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		identity, err := authService.Resolve(c.Request.Context(), uid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown identity"})
			return
		}

		record, err := authService.Authorize(c.Request.Context(), identity)
		if err != nil {
			if errors.Is(err, services.ErrAdminOnly) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Set("identity", identity)
		c.Set("admin_record", record)
		c.Next()
	}
}

// PlayerAuth guards the player-facing write path with a shared API key.
func PlayerAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Player-API-Key")
		if key == "" || key != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid player API key"})
			return
		}
		c.Next()
	}
}
