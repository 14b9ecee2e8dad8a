package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/khaild19/10AI/internal/model"
	"github.com/khaild19/10AI/internal/repository"
	"github.com/khaild19/10AI/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProducts(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}

	products, err := h.products.ListProducts(uid)
	if err != nil {
		WriteServiceError(c, err, "failed to load products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		URL         string   `json:"url"`
		Price       float64  `json:"price"`
		Images      []string `json:"images"`
		Season      string   `json:"season"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" || req.Description == "" || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, description and url are required"})
		return
	}

	p, err := h.products.CreateProduct(uid, service.CreateProductInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Season:      req.Season,
	})
	if err != nil {
		WriteServiceError(c, err, "failed to save product")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "product saved",
		"product_id": p.ID,
	})
}

// UpdateProduct accepts any subset of the editable fields. Other keys in the
// body are ignored.
func (h *Handler) UpdateProduct(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	patch, err := decodeProductPatch(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.products.UpdateProduct(uid, productID, patch); err != nil {
		WriteServiceError(c, err, "failed to update product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(uid, productID); err != nil {
		WriteServiceError(c, err, "failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *Handler) DeleteAllProducts(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}

	n, err := h.products.DeleteAllProducts(uid)
	if err != nil {
		WriteServiceError(c, err, "failed to delete products")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "all products deleted",
		"deleted_count": n,
	})
}

func productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return uint(id), true
}

type fieldError string

func (e fieldError) Error() string {
	return "invalid value for " + string(e)
}

func decodeProductPatch(body map[string]json.RawMessage) (repository.ProductPatch, error) {
	var patch repository.ProductPatch

	decode := func(key string, dst interface{}) (bool, error) {
		raw, ok := body[key]
		if !ok {
			return false, nil
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return false, fieldError(key)
		}
		return true, nil
	}

	var (
		name, url, description, season string
		price                           float64
		images                          []string
		status                          string
	)
	if ok, err := decode("name", &name); err != nil {
		return patch, err
	} else if ok {
		patch.Name = &name
	}
	if ok, err := decode("url", &url); err != nil {
		return patch, err
	} else if ok {
		patch.URL = &url
	}
	if ok, err := decode("description", &description); err != nil {
		return patch, err
	} else if ok {
		patch.Description = &description
	}
	if ok, err := decode("season", &season); err != nil {
		return patch, err
	} else if ok {
		patch.Season = &season
	}
	if ok, err := decode("price", &price); err != nil {
		return patch, err
	} else if ok {
		patch.Price = &price
	}
	if ok, err := decode("images", &images); err != nil {
		return patch, err
	} else if ok {
		list := model.ImageList(images)
		patch.Images = &list
	}
	if ok, err := decode("status", &status); err != nil {
		return patch, err
	} else if ok {
		s := model.ProductStatus(status)
		patch.Status = &s
	}
	return patch, nil
}
