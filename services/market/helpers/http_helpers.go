package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"nearmarket/internal/marketerrors"
	"nearmarket/internal/storage"
	"nearmarket/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, marketerrors.ErrOfferNotFound):
		return http.StatusNotFound, "offer not found"
	case errors.Is(err, marketerrors.ErrChatNotFound):
		return http.StatusNotFound, "chat not found"
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, storage.ErrUnsupportedImageType):
		return http.StatusBadRequest, "unsupported image type"
	case errors.Is(err, marketerrors.ErrOfferNotPending):
		return http.StatusConflict, "offer has already been responded to"
	case errors.Is(err, marketerrors.ErrPendingExists):
		return http.StatusConflict, "a pending offer already exists"
	case errors.Is(err, marketerrors.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, marketerrors.ErrNotOwner), errors.Is(err, marketerrors.ErrChatForbidden):
		return http.StatusForbidden, "access denied"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError sends the mapped JSON error and logs it
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": "+message, ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
