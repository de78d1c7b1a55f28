package repository

import (
	"time"

	"engineview/entities"
)

// Summary is the home-page projection: fleet counts plus the most recent
// measurement time.
type Summary struct {
	VesselsCount      int64      `json:"vessels_count"`
	EnginesCount      int64      `json:"engines_count"`
	MeasurementsCount int64      `json:"measurements_count"`
	LastWeekCount     int64      `json:"last_week_count"`
	LastMeasurementAt *time.Time `json:"last_measurement_at"`
}

type EngineStats struct {
	Engine            entities.Engine       `json:"engine"`
	MeasurementsCount int64                 `json:"measurements_count"`
	LastMeasurement   *entities.Measurement `json:"last_measurement"`
}

type VesselStats struct {
	Vessel            entities.Vessel `json:"vessel"`
	EnginesCount      int64           `json:"engines_count"`
	MeasurementsCount int64           `json:"measurements_count"`
	Engines           []EngineStats   `json:"engines"`
}

type StatsRepository interface {
	Summary() (*Summary, error)
	VesselStats() ([]VesselStats, error)
}
