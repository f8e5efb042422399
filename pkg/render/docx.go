package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// renderDOCX builds a Word document with the cleaned prose as one flowed
// body. Structure is applied coarsely: heading and bold-marker lines get
// emphasis, everything else flows as plain paragraphs, so the full text
// survives readably.
func renderDOCX(cleaned string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for _, line := range strings.Split(cleaned, "\n") {
		trimmed := strings.TrimSpace(line)
		para := doc.AddParagraph()

		switch {
		case trimmed == "":
			// keep the blank line as an empty paragraph

		case strings.HasPrefix(trimmed, "### "):
			para.AddText(strings.TrimPrefix(trimmed, "### ")).Size("32").Bold()

		case isBoldLine(trimmed):
			para.AddText(strings.TrimSuffix(strings.TrimPrefix(trimmed, "**"), "**")).Size("26").Bold()

		case strings.HasPrefix(trimmed, "* "):
			para.AddText("• " + strings.TrimPrefix(trimmed, "* "))

		default:
			para.AddText(trimmed)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render: docx encoding failed: %w", err)
	}
	return buf.Bytes(), nil
}
