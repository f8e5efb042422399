package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Fixed A4 layout constants. Pagination is deterministic: a page break
// happens exactly when the vertical cursor would pass pdfPageBreakAt.
const (
	pdfLeftMargin  = 10.0
	pdfTopMargin   = 15.0
	pdfUsableWidth = 190.0
	pdfPageBreakAt = 270.0

	pdfLineHeight    = 6.0
	pdfHeadingHeight = 9.0
	pdfSubheadHeight = 7.0
	pdfParagraphGap  = 3.0
	pdfBulletIndent  = 5.0
)

// glyphReplacer substitutes known decorative symbols with bracketed text
// tokens before layout. Symbols outside this set pass through and degrade
// to the core-font encoding.
var glyphReplacer = strings.NewReplacer(
	"📊", "[Graph]",
	"📈", "[Chart]",
	"📉", "[Chart]",
	"✅", "[Done]",
	"⚠️", "[Warning]",
	"⚠", "[Warning]",
	"💡", "[Note]",
	"🔍", "[Search]",
)

type pdfLayout struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

// renderPDF lays the cleaned prose out as a paginated A4 document. The
// creation and modification dates are pinned so identical input produces
// identical bytes.
func renderPDF(cleaned string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SuperMind Report", true)
	pdf.SetCreationDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pdf.SetModificationDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pdf.SetMargins(pdfLeftMargin, pdfTopMargin, pdfLeftMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	l := &pdfLayout{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		y:   pdfTopMargin,
	}

	for _, section := range splitSections(glyphReplacer.Replace(cleaned)) {
		l.writeSection(section)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: pdf encoding failed: %w", err)
	}
	return buf.Bytes(), nil
}

// section is one level-3-heading-delimited part of the report.
type section struct {
	Title string
	Lines []string
}

// splitSections splits prose on "### " heading lines. Content before the
// first heading becomes an untitled leading section.
func splitSections(text string) []section {
	var sections []section
	current := section{}

	for _, line := range strings.Split(text, "\n") {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "### "); ok {
			if current.Title != "" || len(current.Lines) > 0 {
				sections = append(sections, current)
			}
			current = section{Title: strings.TrimSpace(title)}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	if current.Title != "" || len(current.Lines) > 0 {
		sections = append(sections, current)
	}
	return sections
}

func (l *pdfLayout) writeSection(s section) {
	if s.Title != "" {
		l.breakPageIfNeeded(pdfHeadingHeight)
		l.pdf.SetFont("Helvetica", "B", 14)
		l.pdf.SetXY(pdfLeftMargin, l.y)
		l.pdf.CellFormat(pdfUsableWidth, pdfHeadingHeight, l.tr(s.Title), "", 0, "L", false, 0, "")
		l.y += pdfHeadingHeight + pdfParagraphGap
	}

	for i := 0; i < len(s.Lines); i++ {
		line := strings.TrimRight(s.Lines[i], " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			l.y += pdfParagraphGap

		case isTableRow(trimmed):
			end := i
			for end < len(s.Lines) && isTableRow(strings.TrimSpace(s.Lines[end])) {
				end++
			}
			l.writeTable(s.Lines[i:end])
			i = end - 1

		case strings.HasPrefix(trimmed, "* "):
			l.writeBullet(strings.TrimPrefix(trimmed, "* "))

		case isBoldLine(trimmed):
			l.writeSubheading(strings.TrimSuffix(strings.TrimPrefix(trimmed, "**"), "**"))

		default:
			l.writeParagraphLine(trimmed)
		}
	}
}

// isTableRow reports whether a line should be treated as a table row:
// pipe-delimited with at least two cells.
func isTableRow(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	return len(splitCells(line)) >= 2
}

// isBoldLine matches a full-line **subsection title** marker.
func isBoldLine(line string) bool {
	return len(line) > 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**")
}

// splitCells splits a pipe-delimited row into trimmed cells, dropping the
// empty edge cells produced by leading/trailing pipes.
func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" && (i == 0 || i == len(parts)-1) {
			continue
		}
		cells = append(cells, p)
	}
	return cells
}

// isSeparatorRow matches markdown table delimiter rows (|---|:---:|),
// which carry no content and are skipped.
func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(c, "-: ") != "" {
			return false
		}
	}
	return len(cells) > 0
}

// writeTable renders a block of pipe-delimited lines as fixed-width
// bordered cells. The first content row is the header row; the column
// count is the widest row of the block, so no cell is ever dropped.
func (l *pdfLayout) writeTable(lines []string) {
	var colCount int
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		cells := splitCells(strings.TrimSpace(line))
		if isSeparatorRow(cells) {
			continue
		}
		if len(cells) > colCount {
			colCount = len(cells)
		}
		rows = append(rows, cells)
	}
	if colCount == 0 {
		return
	}

	header := true
	for _, cells := range rows {
		l.breakPageIfNeeded(pdfLineHeight + 1)

		cellWidth := pdfUsableWidth / float64(colCount)
		if header {
			l.pdf.SetFont("Helvetica", "B", 10)
			l.pdf.SetFillColor(238, 242, 255)
		} else {
			l.pdf.SetFont("Helvetica", "", 10)
		}

		l.pdf.SetXY(pdfLeftMargin, l.y)
		for i := 0; i < colCount; i++ {
			text := ""
			if i < len(cells) {
				text = cells[i]
			}
			l.pdf.CellFormat(cellWidth, pdfLineHeight+1, l.tr(text), "1", 0, "L", header, 0, "")
		}
		l.y += pdfLineHeight + 1
		header = false
	}
	l.y += pdfParagraphGap
}

func (l *pdfLayout) writeBullet(text string) {
	l.pdf.SetFont("Helvetica", "", 11)
	width := pdfUsableWidth - pdfBulletIndent
	for i, wrapped := range l.pdf.SplitText(l.tr(text), width) {
		l.breakPageIfNeeded(pdfLineHeight)
		l.pdf.SetXY(pdfLeftMargin+pdfBulletIndent, l.y)
		prefix := "  "
		if i == 0 {
			prefix = l.tr("•") + " "
		}
		l.pdf.CellFormat(width, pdfLineHeight, prefix+wrapped, "", 0, "L", false, 0, "")
		l.y += pdfLineHeight
	}
}

func (l *pdfLayout) writeSubheading(text string) {
	l.breakPageIfNeeded(pdfSubheadHeight)
	l.pdf.SetFont("Helvetica", "B", 12)
	l.pdf.SetXY(pdfLeftMargin, l.y)
	l.pdf.CellFormat(pdfUsableWidth, pdfSubheadHeight, l.tr(text), "", 0, "L", false, 0, "")
	l.y += pdfSubheadHeight
}

func (l *pdfLayout) writeParagraphLine(text string) {
	l.pdf.SetFont("Helvetica", "", 11)
	for _, wrapped := range l.pdf.SplitText(l.tr(text), pdfUsableWidth) {
		l.breakPageIfNeeded(pdfLineHeight)
		l.pdf.SetXY(pdfLeftMargin, l.y)
		l.pdf.CellFormat(pdfUsableWidth, pdfLineHeight, wrapped, "", 0, "L", false, 0, "")
		l.y += pdfLineHeight
	}
}

// breakPageIfNeeded starts a new page and resets the cursor when writing
// h more millimeters would pass the page-height threshold.
func (l *pdfLayout) breakPageIfNeeded(h float64) {
	if l.y+h > pdfPageBreakAt {
		l.pdf.AddPage()
		l.y = pdfTopMargin
	}
}
