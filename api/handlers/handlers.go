package handlers

import (
	"errors"
	"net/http"

	"github.com/darkademic/oraladder/pkg/messages"

	"github.com/gin-gonic/gin"
)

// statusFromError maps the shared sentinel errors onto HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, messages.ErrPlayerNotFound), errors.Is(err, messages.ErrReplayNotFound):
		return http.StatusNotFound
	case errors.Is(err, messages.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}
