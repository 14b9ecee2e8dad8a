package middleware

import (
	"net/http"

	"github.com/khaild19/10AI/internal/config"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware caps request bodies at server.max_body_mb (2MB when unset).
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Server.MaxBodyMB
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		if c.Request.ContentLength > maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
