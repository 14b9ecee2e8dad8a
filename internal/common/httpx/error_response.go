package httpx

import (
	"net/http"

	"github.com/khaild19/10AI/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
// Errors that are not ServiceErrors are logged and answered with fallbackMessage
// so internal detail never reaches the client.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := common.AsServiceError(err); ok {
		if serviceErr.Code == common.ErrorCodeInternal {
			zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		}
		c.JSON(serviceErrorStatus(serviceErr.Code), gin.H{"error": serviceErr.Message})
		return
	}
	zap.L().Error("unexpected error", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
}

func serviceErrorStatus(code common.ErrorCode) int {
	switch code {
	case common.ErrorCodeValidation:
		return http.StatusBadRequest
	case common.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case common.ErrorCodeForbidden:
		return http.StatusForbidden
	case common.ErrorCodeConflict:
		return http.StatusConflict
	case common.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
