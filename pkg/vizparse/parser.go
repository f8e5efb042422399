package vizparse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"supermind/internal/model"
)

const markerKey = `"visualizations"`

var (
	fencedRe    = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n?(.*?)```")
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// Extract scans AI response text for embedded visualization JSON, parses
// every well-formed block, and returns the text with those blocks removed
// plus the specs in order of appearance.
//
// Extraction is best-effort and never fails: a block that does not parse is
// left in the prose untouched, and text without any recognized block comes
// back unchanged with no specs.
func Extract(raw string) (string, []model.VisualizationSpec) {
	var spans []span
	var specs []model.VisualizationSpec

	// Fenced code blocks first.
	for _, m := range fencedRe.FindAllStringSubmatchIndex(raw, -1) {
		inner := raw[m[2]:m[3]]
		if !strings.Contains(inner, markerKey) {
			continue
		}
		parsed, ok := parsePayload(inner)
		if !ok {
			continue
		}
		spans = append(spans, span{start: m[0], end: m[1], specs: parsed})
	}

	// Inline JSON objects outside the fenced matches.
	for _, s := range findInlineSpans(raw, spans) {
		spans = append(spans, s)
	}

	if len(spans) == 0 {
		return raw, nil
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		b.WriteString(raw[prev:s.start])
		prev = s.end
		specs = append(specs, s.specs...)
	}
	b.WriteString(raw[prev:])

	cleaned := blankRunsRe.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(cleaned), specs
}

type span struct {
	start, end int
	specs      []model.VisualizationSpec
}

// findInlineSpans locates balanced JSON objects containing the marker key
// that sit directly in the prose, skipping regions already claimed by
// fenced matches.
func findInlineSpans(raw string, claimed []span) []span {
	var out []span
	offset := 0
	for {
		idx := strings.Index(raw[offset:], markerKey)
		if idx < 0 {
			return out
		}
		pos := offset + idx
		offset = pos + len(markerKey)

		if inSpans(pos, claimed) || inSpans(pos, out) {
			continue
		}

		start, end, ok := enclosingObject(raw, pos)
		if !ok {
			continue
		}
		parsed, ok := parsePayload(raw[start:end])
		if !ok {
			continue
		}
		out = append(out, span{start: start, end: end, specs: parsed})
	}
}

func inSpans(pos int, spans []span) bool {
	for _, s := range spans {
		if pos >= s.start && pos < s.end {
			return true
		}
	}
	return false
}

// enclosingObject walks outwards from pos to the nearest enclosing '{' and
// forwards to its matching '}'. Since AI output is only semi-structured,
// up to a few enclosing levels are tried before giving up.
func enclosingObject(raw string, pos int) (int, int, bool) {
	start := pos
	for attempt := 0; attempt < 4; attempt++ {
		start = openingBrace(raw, start-1)
		if start < 0 {
			return 0, 0, false
		}
		end := matchBrace(raw, start)
		if end < 0 {
			return 0, 0, false
		}
		if json.Valid([]byte(raw[start:end])) {
			return start, end, true
		}
	}
	return 0, 0, false
}

// openingBrace scans left from i for the brace opening the current level.
func openingBrace(raw string, i int) int {
	depth := 0
	for ; i >= 0; i-- {
		switch raw[i] {
		case '}':
			depth++
		case '{':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// matchBrace returns the index just past the brace matching raw[start],
// honoring string literals and escapes. Returns -1 when unbalanced.
func matchBrace(raw string, start int) int {
	depth := 0
	inString := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// parsePayload decodes one candidate block. A block only counts when it is
// valid JSON carrying the visualizations list.
func parsePayload(s string) ([]model.VisualizationSpec, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}

	var p payload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil, false
	}
	if p.Visualizations == nil {
		return nil, false
	}

	specs := make([]model.VisualizationSpec, 0, len(p.Visualizations))
	for _, v := range p.Visualizations {
		specs = append(specs, convert(v))
	}
	return specs, true
}

// convert turns a raw row-oriented chart payload into the series-oriented
// model shape: categories from the "name" column, one Series per metric.
func convert(v rawViz) model.VisualizationSpec {
	spec := model.VisualizationSpec{
		Title:     v.Title,
		ChartKind: model.ParseChartKind(v.Type),
	}

	for _, row := range v.Data {
		spec.Categories = append(spec.Categories, categoryLabel(row["name"]))
	}

	metrics := v.Metrics
	if len(metrics) == 0 {
		metrics = inferMetrics(v.Data)
	}

	for _, metric := range metrics {
		series := model.Series{Name: metric, Values: make([]float64, 0, len(v.Data))}
		for _, row := range v.Data {
			val, _ := row[metric].(float64)
			series.Values = append(series.Values, val)
		}
		spec.Series = append(spec.Series, series)
	}

	return spec
}

func categoryLabel(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%v", t), ".0")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// inferMetrics derives series names from the numeric columns of the first
// row when the payload carries no explicit metrics list. Pie charts commonly
// use a single "value" column, which this covers naturally.
func inferMetrics(data []map[string]any) []string {
	if len(data) == 0 {
		return nil
	}
	var metrics []string
	for key, val := range data[0] {
		if key == "name" {
			continue
		}
		if _, ok := val.(float64); ok {
			metrics = append(metrics, key)
		}
	}
	sort.Strings(metrics)
	return metrics
}
