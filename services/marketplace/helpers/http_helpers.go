package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"memehustle/internal/hustleerrors"
	"memehustle/utils"
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
	case errors.Is(err, hustleerrors.ErrMemeNotFound):
		return http.StatusNotFound, "meme not found"
	case errors.Is(err, hustleerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for meme"
	case errors.Is(err, hustleerrors.ErrInvalidMeme):
		return http.StatusBadRequest, "invalid meme details"
	case errors.Is(err, hustleerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, hustleerrors.ErrInvalidVote):
		return http.StatusBadRequest, "invalid vote type"
	case errors.Is(err, hustleerrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "record store unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
