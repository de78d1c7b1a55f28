package repository

import (
	"time"

	"engineview/entities"
)

// PageSize is the fixed page size for measurement listings.
const PageSize = 50

// Filter narrows a measurement listing. Nil criteria are no-ops; all supplied
// criteria apply conjunctively. DateFrom is inclusive, DateTo exclusive.
type Filter struct {
	VesselID *uint
	EngineID *uint
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
}

type MeasurementRepository interface {
	// List returns one page of measurements ordered by descending timestamp,
	// with Engine, Vessel and parameter values preloaded, plus the total
	// count of the filtered set.
	List(f Filter) ([]entities.Measurement, int64, error)
	// Window returns measurements since the given instant, optionally
	// narrowed by vessel and engine, unpaginated.
	Window(vesselID, engineID *uint, since time.Time) ([]entities.Measurement, error)
	Get(id uint) (*entities.Measurement, error)
	Create(m *entities.Measurement) error
	CreateValue(v *entities.ParameterValue) error
	Delete(id uint) error
	CountSince(since time.Time) (int64, error)
}
