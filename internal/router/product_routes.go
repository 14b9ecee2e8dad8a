package router

import (
	"github.com/khaild19/10AI/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerProductRoutes(api *gin.RouterGroup, authed []gin.HandlerFunc, downloadLimiter gin.HandlerFunc, h *handler.Handler) {
	productGroup := api.Group("")
	productGroup.Use(authed...)

	productGroup.GET("/products", h.ListProducts)
	productGroup.POST("/products", h.CreateProduct)
	productGroup.POST("/products/save-images", downloadLimiter, h.SaveImagesLocally)
	productGroup.PUT("/products/:id", h.UpdateProduct)
	productGroup.DELETE("/products/:id", h.DeleteProduct)
	productGroup.DELETE("/delete_all_products", h.DeleteAllProducts)
}
