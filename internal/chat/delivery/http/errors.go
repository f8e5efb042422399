package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"supermind/internal/chat"
	"supermind/pkg/response"
)

var errSessionIDRequired = errors.New("session id is required")

// respondError picks the response helper matching the domain error.
func (h *handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, chat.ErrSessionNotFound) {
		response.NotFound(c, err)
		return
	}
	response.Error(c, err)
}
