package repository

import (
	"spacex_dashboard/internal/models"
)

// LaunchRepo gives read-only access to the loaded launch table.
type LaunchRepo interface {
	Records() []models.LaunchRecord
	PayloadBounds() models.PayloadRange
}

// Repository groups the data sources the services read from.
type Repository struct {
	Launches LaunchRepo
}

// NewRepository serves launches from ds.
func NewRepository(ds *Dataset) *Repository {
	return &Repository{
		Launches: ds,
	}
}
