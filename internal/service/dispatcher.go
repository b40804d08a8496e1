package service

import (
	"errors"
	"fmt"
	"slices"

	"spacex_dashboard/internal/models"
)

// ErrUnknownComponent is returned for a changed id no callback listens to.
var ErrUnknownComponent = errors.New("unknown component")

// callback binds one output figure to the inputs it reads.
type callback struct {
	output string
	inputs []string
	run    func(models.WidgetState) models.ChartSpec
}

type DispatchService struct {
	bounds    models.PayloadRange
	callbacks []callback
}

func NewDispatchService(charts Charts, bounds models.PayloadRange) *DispatchService {
	return &DispatchService{
		bounds: bounds,
		callbacks: []callback{
			{
				output: models.PieChartID,
				inputs: []string{models.SiteDropdownID},
				run: func(st models.WidgetState) models.ChartSpec {
					return charts.PieChart(st.Site)
				},
			},
			{
				output: models.ScatterChartID,
				inputs: []string{models.SiteDropdownID, models.PayloadSliderID},
				run: func(st models.WidgetState) models.ChartSpec {
					return charts.ScatterChart(st.Site, *st.Payload)
				},
			},
		},
	}
}

// Dispatch runs every callback that reads changed, in registration order.
// An empty changed id means initial page load and runs them all.
func (d *DispatchService) Dispatch(changed string, state models.WidgetState) ([]models.Output, error) {
	state = d.withDefaults(state)

	var out []models.Output
	for _, cb := range d.callbacks {
		if changed != "" && !slices.Contains(cb.inputs, changed) {
			continue
		}
		out = append(out, models.Output{
			ID:       cb.output,
			Property: models.FigureProperty,
			Figure:   cb.run(state),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, changed)
	}
	return out, nil
}

// withDefaults fills inputs the page has not sent yet with their initial values.
func (d *DispatchService) withDefaults(st models.WidgetState) models.WidgetState {
	if st.Site == "" {
		st.Site = models.SiteAll
	}
	if st.Payload == nil {
		b := d.bounds
		st.Payload = &b
	}
	return st
}
