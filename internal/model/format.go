package model

import "strings"

// Format is the requested (or resulting) report output format of a turn.
type Format string

const (
	// FormatNone marks a bare user query with no answer attached yet.
	FormatNone Format = ""
	// FormatPending marks the transient placeholder turn while the AI
	// engine call is in flight.
	FormatPending Format = "PENDING"

	FormatPDF      Format = "PDF"
	FormatDOCX     Format = "DOCX"
	FormatMarkdown Format = "MARKDOWN"
	FormatHTML     Format = "HTML"

	// FormatError carries a user-facing failure message instead of an answer.
	FormatError Format = "ERROR"
)

// ParseFormat maps a client-supplied string to a renderable Format.
// Unknown values fall back to MARKDOWN, matching the renderer's
// never-fail-on-unknown-format rule.
func ParseFormat(s string) Format {
	switch Format(strings.ToUpper(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF
	case FormatDOCX:
		return FormatDOCX
	case FormatHTML:
		return FormatHTML
	case FormatMarkdown:
		return FormatMarkdown
	default:
		return FormatMarkdown
	}
}
