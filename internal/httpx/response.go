// Package httpx holds the response and request-binding helpers shared by resource handlers.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/apperror"
)

// Error codes returned in ErrorResponse.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidation       = "VALIDATION_ERROR"
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse represents the error body returned by every endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field,omitempty"`
	} `json:"error"`
}

// ErrorJSON writes an error body with the given status.
func ErrorJSON(c *gin.Context, code, message, field string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Field = field
	c.AbortWithStatusJSON(statusCode, resp)
}

// NotFound writes a 404 error body.
func NotFound(c *gin.Context, message string) {
	ErrorJSON(c, CodeNotFound, message, "", http.StatusNotFound)
}

// WriteError maps err onto the matching status and error body.
// Unclassified errors are logged and reported as 500.
func WriteError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	var (
		validationErr *apperror.ValidationError
		missingErr    *apperror.MissingParameterError
		invalidErr    *apperror.InvalidParameterError
	)

	switch {
	case errors.As(err, &missingErr):
		ErrorJSON(c, CodeMissingParameter, missingErr.Error(), missingErr.Param, http.StatusBadRequest)
	case errors.As(err, &invalidErr):
		ErrorJSON(c, CodeInvalidParameter, invalidErr.Error(), invalidErr.Param, http.StatusBadRequest)
	case errors.As(err, &validationErr):
		ErrorJSON(c, CodeValidation, validationErr.Error(), validationErr.Field, http.StatusBadRequest)
	case errors.Is(err, apperror.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, apperror.ErrConflict):
		ErrorJSON(c, CodeConflict, err.Error(), "", http.StatusConflict)
	default:
		logger.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		ErrorJSON(c, CodeInternal, "internal server error", "", http.StatusInternalServerError)
	}
}
