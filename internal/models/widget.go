package models

// Component identifiers shared by the page and the dispatcher.
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieChartID      = "success-pie-chart"
	ScatterChartID  = "success-payload-scatter-chart"
	FigureProperty  = "figure"
	ValueProperty   = "value"
)

// WidgetState is the current value of every input on the page. A nil
// Payload means the slider has not reported yet.
type WidgetState struct {
	Site    string        `json:"site"`
	Payload *PayloadRange `json:"payload,omitempty"`
}

// Output is a recomputed chart addressed to a page component.
type Output struct {
	ID       string    `json:"id"`
	Property string    `json:"property"`
	Figure   ChartSpec `json:"figure"`
	SVG      string    `json:"svg,omitempty"`
}
