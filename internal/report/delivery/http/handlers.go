package http

import (
	"github.com/gin-gonic/gin"

	"supermind/pkg/response"
)

// Generate godoc
// @Summary     Generate a report
// @Description Runs one query through the AI flow and returns the answer rendered in the requested format.
// @Tags        Report
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Generate request"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/reports/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}
