package router

import (
	"github.com/khaild19/10AI/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerSeasonRoutes(api *gin.RouterGroup, authed []gin.HandlerFunc, h *handler.Handler) {
	seasonGroup := api.Group("/seasons")
	seasonGroup.Use(authed...)

	seasonGroup.GET("", h.ListSeasons)
	seasonGroup.POST("", h.CreateSeason)
	seasonGroup.PUT("/:name", h.UpdateSeason)
	seasonGroup.DELETE("/:name", h.DeleteSeason)
}
