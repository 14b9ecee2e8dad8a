package router

import (
	"net/http"
	"strings"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/handler"
	"github.com/khaild19/10AI/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerPublicRoutes mounts the routes that live outside /api: the legacy
// acquisition endpoint and the downloaded image files.
func registerPublicRoutes(r *gin.Engine, authed []gin.HandlerFunc, downloadLimiter gin.HandlerFunc, h *handler.Handler) {
	saveHandlers := append(append([]gin.HandlerFunc{}, authed...), downloadLimiter, h.SaveImagesLocally)
	r.POST("/save-images-locally", saveHandlers...)

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	storage := config.Get().Storage
	prefix := "/" + strings.Trim(storage.URLPrefix, "/")
	if prefix == "/" || storage.Path == "" {
		return
	}
	r.Group(prefix, middleware.StaticCacheMiddleware()).
		StaticFS("", gin.Dir(storage.Path, false))
}
