package http

import (
	"github.com/gin-gonic/gin"

	"supermind/internal/model"
	"supermind/internal/report"
)

// processGenerateReq binds and validates the generate request body.
// An omitted format defaults to PDF to match the existing client.
func (h *handler) processGenerateReq(c *gin.Context) (model.Scope, report.GenerateInput, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, report.GenerateInput{}, err
	}
	return req.toScope(), req.toInput(), nil
}
