// middleware/admin_auth.go
package middleware

import (
	"crypto/subtle"
	"net/http"

	"mazingira-mind-backend/config"

	"github.com/gin-gonic/gin"
)

// RequireAdminKey guards admin endpoints with a shared key supplied in
// the X-Admin-Key header. With no key configured the endpoints stay
// closed.
func RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminKey := config.Get().Security.AdminKey
		if adminKey == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Admin access not configured"})
			return
		}

		provided := c.GetHeader("X-Admin-Key")
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing admin key"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin key"})
			return
		}

		c.Next()
	}
}
