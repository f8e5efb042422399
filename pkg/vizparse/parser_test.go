package vizparse_test

import (
	"strings"
	"testing"

	"supermind/internal/model"
	"supermind/pkg/vizparse"
)

const engagementBlock = `{"visualizations": [{"title": "Weekly Engagement", "type": "line", "data": [{"name": "Mon", "Engagement": 120}, {"name": "Tue", "Engagement": 150}, {"name": "Wed", "Engagement": 90}], "metrics": ["Engagement"]}]}`

func TestExtract(t *testing.T) {
	t.Run("Fenced Block", func(t *testing.T) {
		raw := "## Report\n\nEngagement grew steadily.\n\n```json\n" + engagementBlock + "\n```\n\nSee the chart above."
		text, specs := vizparse.Extract(raw)

		if len(specs) != 1 {
			t.Fatalf("expected 1 spec, got %d", len(specs))
		}
		spec := specs[0]
		if spec.Title != "Weekly Engagement" {
			t.Errorf("unexpected title: %q", spec.Title)
		}
		if spec.ChartKind != model.ChartLine {
			t.Errorf("expected line chart, got %s", spec.ChartKind)
		}
		if len(spec.Categories) != 3 || spec.Categories[0] != "Mon" {
			t.Errorf("unexpected categories: %v", spec.Categories)
		}
		if len(spec.Series) != 1 || spec.Series[0].Name != "Engagement" {
			t.Fatalf("unexpected series: %+v", spec.Series)
		}
		if spec.Series[0].Values[1] != 150 {
			t.Errorf("unexpected series values: %v", spec.Series[0].Values)
		}

		if strings.Contains(text, "visualizations") {
			t.Errorf("block not removed from text: %q", text)
		}
		if !strings.Contains(text, "Engagement grew steadily.") || !strings.Contains(text, "See the chart above.") {
			t.Errorf("surrounding prose lost: %q", text)
		}
	})

	t.Run("Inline Object", func(t *testing.T) {
		raw := "Summary first.\n\n" + engagementBlock + "\n\nSummary last."
		text, specs := vizparse.Extract(raw)

		if len(specs) != 1 {
			t.Fatalf("expected 1 spec, got %d", len(specs))
		}
		if strings.Contains(text, "{") {
			t.Errorf("inline object not removed: %q", text)
		}
	})

	t.Run("No Block Returns Text Unchanged", func(t *testing.T) {
		raw := "Plain report text with no charts.\nJust prose."
		text, specs := vizparse.Extract(raw)
		if text != raw {
			t.Errorf("text changed: %q", text)
		}
		if specs != nil {
			t.Errorf("expected no specs, got %v", specs)
		}
	})

	t.Run("Malformed JSON Left Untouched", func(t *testing.T) {
		raw := "Before.\n{\"visualizations\": [{\"title\": broken}\nAfter."
		text, specs := vizparse.Extract(raw)
		if len(specs) != 0 {
			t.Errorf("expected no specs from malformed block, got %d", len(specs))
		}
		if !strings.Contains(text, "visualizations") {
			t.Errorf("malformed block should survive: %q", text)
		}
	})

	t.Run("Multiple Blocks In Order", func(t *testing.T) {
		first := `{"visualizations": [{"title": "First", "type": "pie", "data": [{"name": "A", "value": 60}, {"name": "B", "value": 40}]}]}`
		raw := "Intro.\n\n```json\n" + first + "\n```\n\nMiddle.\n\n" + engagementBlock + "\n\nEnd."
		text, specs := vizparse.Extract(raw)

		if len(specs) != 2 {
			t.Fatalf("expected 2 specs, got %d", len(specs))
		}
		if specs[0].Title != "First" || specs[1].Title != "Weekly Engagement" {
			t.Errorf("specs out of order: %q, %q", specs[0].Title, specs[1].Title)
		}
		// Pie metrics inferred from numeric columns.
		if len(specs[0].Series) != 1 || specs[0].Series[0].Name != "value" {
			t.Errorf("expected inferred value series, got %+v", specs[0].Series)
		}
		if strings.Contains(text, "visualizations") {
			t.Errorf("blocks not removed: %q", text)
		}
	})

	t.Run("Unknown Chart Type Defaults To Bar", func(t *testing.T) {
		raw := `{"visualizations": [{"title": "X", "type": "sankey", "data": [{"name": "A", "v": 1}]}]}`
		_, specs := vizparse.Extract(raw)
		if len(specs) != 1 {
			t.Fatalf("expected 1 spec, got %d", len(specs))
		}
		if specs[0].ChartKind != model.ChartBar {
			t.Errorf("expected bar fallback, got %s", specs[0].ChartKind)
		}
	})

	t.Run("Idempotent On Cleaned Text", func(t *testing.T) {
		raw := "Report.\n\n```json\n" + engagementBlock + "\n```\n\nDone."
		cleaned, _ := vizparse.Extract(raw)
		again, specs := vizparse.Extract(cleaned)
		if again != cleaned {
			t.Errorf("second pass changed text: %q vs %q", again, cleaned)
		}
		if len(specs) != 0 {
			t.Errorf("second pass found specs: %v", specs)
		}
	})

	t.Run("Collapses Blank Runs", func(t *testing.T) {
		raw := "Above.\n\n\n" + engagementBlock + "\n\n\nBelow."
		text, _ := vizparse.Extract(raw)
		if strings.Contains(text, "\n\n\n") {
			t.Errorf("blank runs not collapsed: %q", text)
		}
	})
}
