package render

import "supermind/internal/model"

// Result is the transportable artifact produced for one render call.
// Exactly one of Text/Binary is populated, consistent with Format.
type Result struct {
	Format         model.Format
	Text           string
	Binary         []byte
	Visualizations []model.VisualizationSpec
}
