package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Paths mirror the web client's existing contract.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/sessions", h.ListSessions)
	rg.GET("/session/:id", h.GetTurns)
	rg.DELETE("/session/:id", h.DeleteSession)
}
