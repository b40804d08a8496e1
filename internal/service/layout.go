package service

import (
	"strconv"

	"spacex_dashboard/internal/models"
)

const (
	pageTitle          = "SpaceX Launch Records Dashboard"
	dropdownAllLabel   = "All Sites"
	dropdownHint       = "Select a Launch Site"
	sliderMin          = 0
	sliderMax          = 10000
	sliderStep         = 1000
	sliderMarkInterval = 2500
)

type LayoutService struct {
	layout models.Layout
}

// NewLayoutService builds the page once; the slider starts at bounds.
func NewLayoutService(bounds models.PayloadRange) *LayoutService {
	return &LayoutService{layout: buildLayout(bounds)}
}

// Layout returns a copy of the page description.
func (s *LayoutService) Layout() models.Layout {
	return cloneLayout(s.layout)
}

func buildLayout(bounds models.PayloadRange) models.Layout {
	options := []models.Option{{Label: dropdownAllLabel, Value: models.SiteAll}}
	for _, site := range models.KnownSites {
		options = append(options, models.Option{Label: site, Value: site})
	}

	var marks []models.Mark
	for v := sliderMin; v <= sliderMax; v += sliderMarkInterval {
		marks = append(marks, models.Mark{Value: float64(v), Label: strconv.Itoa(v)})
	}

	return models.Layout{
		Title: pageTitle,
		TitleStyle: map[string]string{
			"text-align": "center",
			"color":      "#503D36",
			"font-size":  "40px",
		},
		Dropdown: models.Dropdown{
			ID:          models.SiteDropdownID,
			Options:     options,
			Value:       models.SiteAll,
			Placeholder: dropdownHint,
			Searchable:  true,
		},
		Slider: models.RangeSlider{
			ID:    models.PayloadSliderID,
			Min:   sliderMin,
			Max:   sliderMax,
			Step:  sliderStep,
			Marks: marks,
			Value: bounds,
		},
		Graphs: []models.Graph{
			{ID: models.PieChartID},
			{ID: models.ScatterChartID},
		},
	}
}

func cloneLayout(l models.Layout) models.Layout {
	style := make(map[string]string, len(l.TitleStyle))
	for k, v := range l.TitleStyle {
		style[k] = v
	}
	l.TitleStyle = style
	l.Dropdown.Options = append([]models.Option(nil), l.Dropdown.Options...)
	l.Slider.Marks = append([]models.Mark(nil), l.Slider.Marks...)
	l.Graphs = append([]models.Graph(nil), l.Graphs...)
	return l
}
