package router

import (
	"github.com/khaild19/10AI/internal/handler"
	"github.com/khaild19/10AI/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	api.POST("/register", authLimiter, h.Register)
	api.POST("/login", authLimiter, h.Login)
	api.POST("/logout", middleware.OptionalAuth(), h.Logout)
	api.GET("/current-user", middleware.OptionalAuth(), h.CurrentUser)
}
