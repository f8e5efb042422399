package http

import (
	"encoding/base64"

	"supermind/internal/model"
	"supermind/internal/report"
)

// --- Request DTOs ---

type generateReq struct {
	UserID    string                    `json:"user_id"    binding:"required"`
	ProjectID string                    `json:"project_id" binding:"required"`
	Query     string                    `json:"query"`
	Format    string                    `json:"format"`
	SessionID string                    `json:"session_id"`
	Tweaks    map[string]map[string]any `json:"tweaks"`
}

func (r generateReq) toScope() model.Scope {
	return model.Scope{
		UserID:    r.UserID,
		ProjectID: r.ProjectID,
	}
}

func (r generateReq) toInput() report.GenerateInput {
	format := r.Format
	if format == "" {
		format = string(model.FormatPDF)
	}
	return report.GenerateInput{
		Query:     r.Query,
		SessionID: r.SessionID,
		Format:    model.ParseFormat(format),
		Tweaks:    r.Tweaks,
	}
}

// --- Response DTOs ---

type visualizationResp struct {
	Title      string         `json:"title"`
	Type       string         `json:"type"`
	Categories []string       `json:"categories"`
	Series     []model.Series `json:"series"`
}

type generateResp struct {
	SessionID       string              `json:"session_id"`
	Format          string              `json:"format"`
	MarkdownContent string              `json:"markdown_content,omitempty"`
	File            string              `json:"file,omitempty"`
	Visualizations  []visualizationResp `json:"visualizations,omitempty"`
	Error           string              `json:"error,omitempty"`
}

func (h *handler) newGenerateResp(out report.GenerateOutput) generateResp {
	resp := generateResp{
		SessionID: out.SessionID,
		Format:    string(out.Format),
		Error:     out.ErrorMessage,
	}

	if len(out.Binary) > 0 {
		resp.File = base64.StdEncoding.EncodeToString(out.Binary)
	} else {
		resp.MarkdownContent = out.Text
	}

	for _, v := range out.Visualizations {
		resp.Visualizations = append(resp.Visualizations, visualizationResp{
			Title:      v.Title,
			Type:       string(v.ChartKind),
			Categories: v.Categories,
			Series:     v.Series,
		})
	}
	return resp
}
