package vizparse

// payload is the recognized envelope embedded in AI response text.
type payload struct {
	Visualizations []rawViz `json:"visualizations"`
}

// rawViz is one chart specification as the flow emits it: rows of
// {"name": <category>, "<metric>": <number>, ...} plus an optional explicit
// metrics list.
type rawViz struct {
	Title   string           `json:"title"`
	Type    string           `json:"type"`
	Data    []map[string]any `json:"data"`
	Metrics []string         `json:"metrics"`
}
