// Package render draws chart specifications as SVG with go-chart.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"spacex_dashboard/internal/models"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyChart is returned when a spec has nothing to draw.
var ErrEmptyChart = errors.New("chart has no data")

// Size is the output canvas in pixels.
type Size struct {
	Width  int
	Height int
}

// palette is plotly's default qualitative color sequence.
var palette = []drawing.Color{
	drawing.ColorFromHex("636EFA"),
	drawing.ColorFromHex("EF553B"),
	drawing.ColorFromHex("00CC96"),
	drawing.ColorFromHex("AB63FA"),
	drawing.ColorFromHex("FFA15A"),
	drawing.ColorFromHex("19D3F3"),
	drawing.ColorFromHex("FF6692"),
	drawing.ColorFromHex("B6E880"),
}

func colorAt(i int) drawing.Color { return palette[i%len(palette)] }

// SVG renders spec at the given size.
func SVG(spec models.ChartSpec, size Size) ([]byte, error) {
	if spec.Empty() {
		return nil, ErrEmptyChart
	}
	switch spec.Kind {
	case models.ChartPie:
		return renderPie(spec, size)
	case models.ChartScatter:
		return renderScatter(spec, size)
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}
}

func renderPie(spec models.ChartSpec, size Size) ([]byte, error) {
	values := make([]chart.Value, 0, len(spec.Slices))
	for i, s := range spec.Slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Value: float64(s.Value),
			Style: chart.Style{FillColor: colorAt(i), StrokeColor: drawing.ColorWhite},
		})
	}
	pie := chart.PieChart{
		Title:  spec.Title,
		Width:  size.Width,
		Height: size.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render pie %q: %w", spec.Title, err)
	}
	return buf.Bytes(), nil
}

// pointStyle draws dots only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		StrokeColor: col,
		DotWidth:    5,
		DotColor:    col,
	}
}

func renderScatter(spec models.ChartSpec, size Size) ([]byte, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	series := make([]chart.Series, 0, len(spec.Series))
	for i, s := range spec.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j], ys[j] = p.X, p.Y
			lo, hi = math.Min(lo, p.X), math.Max(hi, p.X)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(colorAt(i)),
		})
	}

	// go-chart rejects zero-width ranges, which a single payload value gives.
	pad := math.Max(1, (hi-lo)*0.05)
	ch := chart.Chart{
		Title:      spec.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  spec.Labels["x"],
			Range: &chart.ContinuousRange{Min: math.Max(0, lo-pad), Max: hi + pad},
		},
		YAxis: chart.YAxis{
			Name:  spec.Labels["y"],
			Range: &chart.ContinuousRange{Min: -0.5, Max: 1.5},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render scatter %q: %w", spec.Title, err)
	}
	return buf.Bytes(), nil
}
