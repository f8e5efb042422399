package model

// ChartKind is the chart type a visualization should be drawn as.
type ChartKind string

const (
	ChartLine  ChartKind = "line"
	ChartArea  ChartKind = "area"
	ChartPie   ChartKind = "pie"
	ChartRadar ChartKind = "radar"
	ChartBar   ChartKind = "bar"
)

// ParseChartKind maps a raw type string to a ChartKind.
// Unknown kinds default to bar, the chart component's default branch.
func ParseChartKind(s string) ChartKind {
	switch ChartKind(s) {
	case ChartLine, ChartArea, ChartPie, ChartRadar, ChartBar:
		return ChartKind(s)
	default:
		return ChartBar
	}
}

// Series is one named numeric series of a visualization.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// VisualizationSpec describes one chart extracted from AI response text.
type VisualizationSpec struct {
	Title      string    `json:"title"`
	ChartKind  ChartKind `json:"chart_kind"`
	Categories []string  `json:"categories"`
	Series     []Series  `json:"series"`
}
