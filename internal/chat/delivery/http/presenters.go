package http

import (
	"encoding/base64"
	"time"

	"supermind/internal/chat"
	"supermind/internal/model"
)

// --- Request DTOs ---

type listSessionsReq struct {
	UserID    string `form:"user_id"    binding:"required"`
	ProjectID string `form:"project_id" binding:"required"`
}

func (r listSessionsReq) validate() error { return nil }

func (r listSessionsReq) toScope() model.Scope {
	return model.Scope{
		UserID:    r.UserID,
		ProjectID: r.ProjectID,
	}
}

// --- Response DTOs ---

// Field names match what the web client already consumes: session_id,
// title, created_at on sessions; query/format/markdown_content/file on turns.

type sessionResp struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func newSessionResp(s model.Session) sessionResp {
	return sessionResp{
		SessionID: s.ID,
		UserID:    s.UserID,
		ProjectID: s.ProjectID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

type listSessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
	Count    int           `json:"count"`
}

func (h *handler) newListSessionsResp(out chat.ListSessionsOutput) listSessionsResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = newSessionResp(s)
	}
	return listSessionsResp{
		Sessions: sessions,
		Count:    out.Count,
	}
}

type visualizationResp struct {
	Title      string         `json:"title"`
	Type       string         `json:"type"`
	Categories []string       `json:"categories"`
	Series     []model.Series `json:"series"`
}

type turnResp struct {
	Query           string              `json:"query"`
	Format          string              `json:"format,omitempty"`
	MarkdownContent string              `json:"markdown_content,omitempty"`
	File            string              `json:"file,omitempty"`
	Visualizations  []visualizationResp `json:"visualizations,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

func newTurnResp(t model.Turn) turnResp {
	resp := turnResp{
		Query:     t.Query,
		Format:    string(t.Format),
		CreatedAt: t.CreatedAt,
	}

	if len(t.Binary) > 0 {
		resp.File = base64.StdEncoding.EncodeToString(t.Binary)
	} else {
		resp.MarkdownContent = t.AnswerText
	}

	for _, v := range t.Visualizations {
		resp.Visualizations = append(resp.Visualizations, visualizationResp{
			Title:      v.Title,
			Type:       string(v.ChartKind),
			Categories: v.Categories,
			Series:     v.Series,
		})
	}
	return resp
}

type getTurnsResp struct {
	Turns []turnResp `json:"turns"`
}

func (h *handler) newGetTurnsResp(out chat.GetTurnsOutput) getTurnsResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = newTurnResp(t)
	}
	return getTurnsResp{Turns: turns}
}
