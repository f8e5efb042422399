package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"supermind/internal/chat"
	"supermind/internal/report"
	"supermind/pkg/response"
)

// respondError picks the response helper matching the domain error.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, report.ErrGenerationInFlight):
		response.Conflict(c, err)
	case errors.Is(err, chat.ErrSessionNotFound):
		response.NotFound(c, err)
	default:
		response.Error(c, err)
	}
}
