package report

import "supermind/internal/model"

// GenerateInput is one report-generation request.
type GenerateInput struct {
	Query     string
	SessionID string // blank starts a new session titled from the query
	Format    model.Format
	Tweaks    map[string]map[string]any // per-component flow overrides, passed through opaquely
}

// GenerateOutput is the uniform result envelope. Exactly one of Text,
// Binary, ErrorMessage is populated, consistent with Format.
type GenerateOutput struct {
	SessionID      string
	Format         model.Format
	Text           string
	Binary         []byte
	Visualizations []model.VisualizationSpec
	ErrorMessage   string
}
