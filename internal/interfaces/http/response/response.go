package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "swea-cms.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error translates a domain error into an HTTP response. Validation errors
// carry the per-field message map; everything else collapses to code and
// message.
func Error(c *gin.Context, err error) {
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "validation failed",
			"fields":  verr.Fields,
		})
		return
	}

	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// fromSentinel maps bare domain sentinels onto statuses so callers can
// return them without wrapping.
func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized(err.Error())
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}
