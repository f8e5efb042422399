package http

import (
	"github.com/gin-gonic/gin"

	"supermind/internal/chat"
	"supermind/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	ListSessions(c *gin.Context)
	GetTurns(c *gin.Context)
	DeleteSession(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
