package response

import (
	"errors"
	"net/http"

	xerrors "catalog-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  []string            `json:"errors,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Errors = []string{err.Error()}
	}

	c.JSON(code, resp)
}

// FromError is the single transport-boundary mapping from error kinds to
// HTTP statuses. Services raise domain errors; handlers hand them here
// untouched. Anything outside the taxonomy becomes a 500 whose detail is
// hidden in release mode.
func FromError(c *gin.Context, err error) {
	c.Abort()

	var verr *xerrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "validation failed",
			Fields:  verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		Error(c, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, xerrors.ErrConflict):
		Error(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, xerrors.ErrDomainRule), errors.Is(err, xerrors.ErrInvalidInput):
		Error(c, http.StatusBadRequest, "bad request", err)
	case errors.Is(err, xerrors.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, "unauthorized", err)
	default:
		if gin.Mode() == gin.ReleaseMode {
			Error(c, http.StatusInternalServerError, "internal server error", nil)
			return
		}
		Error(c, http.StatusInternalServerError, "internal server error", err)
	}
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}
