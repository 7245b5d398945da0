package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"event-management-backend/config"
)

// APIKeyAuth gates every bound route behind the shared-secret x-api-key
// header. The comparison is constant-time; an empty configured key rejects
// everything.
func APIKeyAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-api-key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing x-api-key header."})
			return
		}

		if cfg.APIKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid API key."})
			return
		}

		c.Next()
	}
}
