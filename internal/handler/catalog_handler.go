package handler

import (
	"context"
	"net/http"

	"github.com/khaild19/10AI/internal/usecase/app"

	"github.com/gin-gonic/gin"
)

// SaveImagesLocally downloads the posted image URLs and records a product.
// The batch runs on a context detached from the request so a client
// disconnect does not abort it halfway.
func (h *Handler) SaveImagesLocally(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}

	var req struct {
		ProductName string   `json:"product_name"`
		ImageURLs   []string `json:"image_urls"`
		URL         string   `json:"url"`
		Description string   `json:"description"`
		Season      string   `json:"season"`
		Price       float64  `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.catalogUC.SaveImagesLocally(context.WithoutCancel(c.Request.Context()), uid, app.SaveImagesRequest{
		ProductName: req.ProductName,
		ImageURLs:   req.ImageURLs,
		URL:         req.URL,
		Description: req.Description,
		Season:      req.Season,
		Price:       req.Price,
	})
	if err != nil {
		WriteServiceError(c, err, "failed to save images")
		return
	}

	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
