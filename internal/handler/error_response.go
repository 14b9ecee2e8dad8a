package handler

import (
	"net/http"

	"github.com/khaild19/10AI/internal/common/httpx"
	"github.com/khaild19/10AI/internal/consts"

	"github.com/gin-gonic/gin"
)

func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}

// ownerID reads the user id the auth middleware stored. Routes without the
// middleware get a 401.
func ownerID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(consts.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	uid, ok := value.(uint)
	if !ok || uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return uid, true
}
