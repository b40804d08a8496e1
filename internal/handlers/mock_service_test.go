package handlers

import (
	"errors"
	"testing"

	"spacex_dashboard/internal/models"
	"spacex_dashboard/internal/render"
	"spacex_dashboard/internal/repository"
	"spacex_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockDispatcher struct {
	outs        []models.Output
	err         error
	lastChanged string
	lastState   models.WidgetState
	calls       int
}

func (m *mockDispatcher) Dispatch(changed string, state models.WidgetState) ([]models.Output, error) {
	m.calls++
	m.lastChanged = changed
	m.lastState = state
	return m.outs, m.err
}

var errBoom = errors.New("boom")

// ---- Shared Test Helpers ----

func testRecords() []models.LaunchRecord {
	return []models.LaunchRecord{
		{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMassKg: 0, Class: 0, BoosterCategory: "v1.0"},
		{FlightNumber: 2, Site: "CCAFS LC-40", PayloadMassKg: 525, Class: 0, BoosterCategory: "v1.0"},
		{FlightNumber: 3, Site: "CCAFS LC-40", PayloadMassKg: 3170, Class: 1, BoosterCategory: "v1.1"},
		{FlightNumber: 4, Site: "VAFB SLC-4E", PayloadMassKg: 500, Class: 0, BoosterCategory: "v1.1"},
		{FlightNumber: 5, Site: "KSC LC-39A", PayloadMassKg: 2490, Class: 1, BoosterCategory: "FT"},
		{FlightNumber: 6, Site: "KSC LC-39A", PayloadMassKg: 5300, Class: 1, BoosterCategory: "FT"},
		{FlightNumber: 7, Site: "KSC LC-39A", PayloadMassKg: 5200, Class: 0, BoosterCategory: "FT"},
		{FlightNumber: 8, Site: "CCAFS SLC-40", PayloadMassKg: 9600, Class: 1, BoosterCategory: "B5"},
	}
}

// newTestService builds the real service stack over testRecords.
func newTestService(t *testing.T) *service.Service {
	t.Helper()
	ds, err := repository.NewDataset(testRecords())
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	return service.NewService(repository.NewRepository(ds), service.DefaultOptions())
}

func newTestHandler(s *service.Service) *Handler {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil, render.Size{Width: 320, Height: 240})
}

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestHandler(s).InitRoutes()
}
