package models

// ChartKind names the type of a chart.
type ChartKind string

const (
	ChartPie     ChartKind = "pie"
	ChartScatter ChartKind = "scatter"
)

// ChartSpec describes a chart for the renderer. It is built fresh per call.
type ChartSpec struct {
	Kind   ChartKind         `json:"kind"`
	Title  string            `json:"title"`
	Labels map[string]string `json:"labels,omitempty"` // axis/legend captions keyed by x, y, color
	Slices []Slice           `json:"slices,omitempty"` // pie only
	Series []Series          `json:"series,omitempty"` // scatter only
}

// Slice is one pie wedge.
type Slice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Series is a group of scatter points sharing a color.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Point is a single scatter mark.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Total sums slice values.
func (c ChartSpec) Total() int {
	n := 0
	for _, s := range c.Slices {
		n += s.Value
	}
	return n
}

// Points flattens all series, series by series.
func (c ChartSpec) Points() []Point {
	var out []Point
	for _, s := range c.Series {
		out = append(out, s.Points...)
	}
	return out
}

// Empty reports whether the chart has nothing to draw.
func (c ChartSpec) Empty() bool {
	switch c.Kind {
	case ChartPie:
		return c.Total() == 0
	default:
		return len(c.Points()) == 0
	}
}
