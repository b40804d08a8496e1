package service

import (
	"spacex_dashboard/internal/models"
	"spacex_dashboard/internal/repository"
)

// Charts builds chart specifications from the launch table. Both methods are
// pure: same input, same output.
type Charts interface {
	PieChart(site string) models.ChartSpec
	ScatterChart(site string, payload models.PayloadRange) models.ChartSpec
}

// Page exposes the static page description.
type Page interface {
	Layout() models.Layout
}

// Dispatcher routes a widget change to the callbacks that depend on it.
type Dispatcher interface {
	Dispatch(changed string, state models.WidgetState) ([]models.Output, error)
}

type Service struct {
	Charts
	Page
	Dispatcher
}

func NewService(repos *repository.Repository, opts Options) *Service {
	charts := NewChartService(repos.Launches, opts)
	bounds := repos.Launches.PayloadBounds()
	return &Service{
		Charts:     charts,
		Page:       NewLayoutService(bounds),
		Dispatcher: NewDispatchService(charts, bounds),
	}
}
