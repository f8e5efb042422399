package http

import (
	"github.com/gin-gonic/gin"

	"supermind/internal/model"
)

// processListReq binds and validates the list sessions query parameters.
func (h *handler) processListReq(c *gin.Context) (model.Scope, error) {
	var req listSessionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return model.Scope{}, err
	}
	return req.toScope(), req.validate()
}
