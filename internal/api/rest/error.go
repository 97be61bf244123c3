package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/api/middleware"
	apierrors "github.com/feral-file/ff-dao/internal/api/shared/errors"
	"github.com/feral-file/ff-dao/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondError maps err to its status and sends a standardized error response.
// Server errors are logged, guard refusals are logged at debug.
func respondError(c *gin.Context, err error) {
	status, apiErr := apierrors.FromError(err)

	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", middleware.GetRequestID(c)),
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, fields...)
	} else {
		logger.DebugCtx(c.Request.Context(), "Request refused", append(fields, zap.Error(err))...)
	}

	c.JSON(status, errorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: apierrors.NewBadRequestError(message, details...)})
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: apierrors.NewValidationError(details)})
}
