package middleware

import (
	"github.com/khaild19/10AI/internal/config"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware sets Cache-Control on downloaded image responses.
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cc := config.Get().Server.StaticCacheControl; cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
