package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListSeasons(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}

	seasons, err := h.seasons.ListSeasons(uid)
	if err != nil {
		WriteServiceError(c, err, "failed to load seasons")
		return
	}
	c.JSON(http.StatusOK, gin.H{"seasons": seasons})
}

func (h *Handler) CreateSeason(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	season, err := h.seasons.CreateSeason(uid, req.Name, req.Description)
	if err != nil {
		WriteServiceError(c, err, "failed to save season")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "season saved",
		"season":  season,
	})
}

func (h *Handler) UpdateSeason(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}

	var req struct {
		NewName     string  `json:"new_name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.seasons.RenameSeason(uid, c.Param("name"), req.NewName, req.Description); err != nil {
		WriteServiceError(c, err, "failed to update season")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "season updated"})
}

func (h *Handler) DeleteSeason(c *gin.Context) {
	uid, ok := ownerID(c)
	if !ok {
		return
	}

	if err := h.seasons.DeleteSeason(uid, c.Param("name")); err != nil {
		WriteServiceError(c, err, "failed to delete season")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "season deleted"})
}
