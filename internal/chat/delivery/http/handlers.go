package http

import (
	"github.com/gin-gonic/gin"

	"supermind/pkg/response"
)

// ListSessions godoc
// @Summary     List chat sessions
// @Description Returns the user's sessions for a project, most recent first.
// @Tags        Chat
// @Produce     json
// @Param       user_id    query string true "User ID"
// @Param       project_id query string true "Project ID"
// @Success     200 {object} listSessionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chats/sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListSessions(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListSessionsResp(output))
}

// GetTurns godoc
// @Summary     Get session turns
// @Description Returns the ordered question/answer turns of one session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} getTurnsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chats/session/{id} [GET]
func (h *handler) GetTurns(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errSessionIDRequired)
		return
	}

	output, err := h.uc.GetTurns(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetTurns: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGetTurnsResp(output))
}

// DeleteSession godoc
// @Summary     Delete a session
// @Description Removes a session and all its turns.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chats/session/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errSessionIDRequired)
		return
	}

	if err := h.uc.DeleteSession(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
