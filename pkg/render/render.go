// Package render turns extracted report prose into the artifact a client
// asked for: markdown or HTML text, or a PDF/DOCX binary document.
package render

import (
	"strings"

	"supermind/internal/model"
)

// Render packages cleaned prose for the requested format. Unrecognized
// formats fall back to markdown; the call never fails for a format choice,
// only for a document encoder error.
//
// Markdown passes through byte-verbatim. The document formats (PDF, DOCX,
// HTML) normalize line endings first, since their layout walks lines.
func Render(cleaned string, format model.Format, specs []model.VisualizationSpec) (Result, error) {
	switch format {
	case model.FormatPDF:
		binary, err := renderPDF(normalize(cleaned))
		if err != nil {
			return Result{}, err
		}
		return Result{Format: model.FormatPDF, Binary: binary, Visualizations: specs}, nil

	case model.FormatDOCX:
		binary, err := renderDOCX(normalize(cleaned))
		if err != nil {
			return Result{}, err
		}
		return Result{Format: model.FormatDOCX, Binary: binary, Visualizations: specs}, nil

	case model.FormatHTML:
		return Result{Format: model.FormatHTML, Text: renderHTML(normalize(cleaned)), Visualizations: specs}, nil

	case model.FormatMarkdown:
		return Result{Format: model.FormatMarkdown, Text: cleaned, Visualizations: specs}, nil

	default:
		return Result{Format: model.FormatMarkdown, Text: cleaned, Visualizations: specs}, nil
	}
}

func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
