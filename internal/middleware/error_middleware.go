package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/pkg/apperrors"
	"github.com/hariz/collegems/internal/pkg/logger"
)

// debugErrors controls whether raw internal error text is attached to 500
// responses. Only enabled outside production.
var debugErrors bool

// SetDebugErrors toggles caller-facing exposure of internal error details
func SetDebugErrors(enabled bool) {
	debugErrors = enabled
}

// HandleAPIError maps service errors to HTTP responses. Validation, conflict
// and credential failures keep the original API's 400 contract; anything
// unclassified is logged and returned as a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid email or password"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		resp := dto.NewErrorResponse("Internal server error")
		if debugErrors {
			resp = resp.WithError(err)
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
