package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/clusterman/pkg/manager"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spechtlabs/clusterman/pkg/storage"
)

// statusFor maps well-known failure causes to HTTP status codes. Unknown
// causes get the handler's fallback status.
func statusFor(err humane.Error, fallbackStatus int) int {
	cause := err.Cause()
	if cause == nil {
		return fallbackStatus
	}

	switch {
	case errors.Is(cause, storage.ErrClusterNotFound),
		errors.Is(cause, storage.ErrRoleConfigGroupNotFound),
		errors.Is(cause, storage.ErrRoleNotFound):
		return http.StatusNotFound
	case errors.Is(cause, storage.ErrClusterExists),
		errors.Is(cause, storage.ErrRoleConfigGroupExists):
		return http.StatusConflict
	case errors.Is(cause, storage.ErrRoleTypeMismatch),
		errors.Is(cause, storage.ErrBaseGroupImmutable),
		errors.Is(cause, manager.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(cause, manager.ErrDatabaseUnavailable):
		return http.StatusServiceUnavailable
	}

	return fallbackStatus
}

// writeHumaneError writes a humane.Error as a JSON models.ErrorResponse with
// a status code mapped from its cause chain. Errors are always JSON,
// regardless of the request's Accept header.
func writeHumaneError(c *gin.Context, err humane.Error, fallbackStatus int) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(statusFor(err, fallbackStatus), models.FromHumaneError(err))
}

// respond writes a success payload as JSON or, when the client asks for it
// via the Accept header (application/xml or text/xml), as XML.
func respond(c *gin.Context, status int, obj any) {
	switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEXML, gin.MIMEXML2) {
	case gin.MIMEXML, gin.MIMEXML2:
		c.XML(status, obj)
	default:
		c.JSON(status, obj)
	}
}
