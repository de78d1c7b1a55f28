package importer

import (
	"github.com/google/uuid"

	"engineview/entities"
)

// MaxReportedErrors caps how many row/column errors one import surfaces.
const MaxReportedErrors = 10

// Options configure one import run against a single target engine.
type Options struct {
	EngineID        uint
	Delimiter       rune
	TimestampFormat string // strptime-style (%Y-%m-%d %H:%M:%S) or a Go layout
	CreatedBy       string
}

// Result reports the outcome of one import run. Rows whose only stored
// outcome is an empty Measurement do not count toward Imported.
type Result struct {
	BatchID           uuid.UUID               `json:"batch_id"`
	Imported          int                     `json:"imported"`
	TotalRows         int                     `json:"total_rows"`
	CreatedParameters []entities.ParameterType `json:"created_parameters"`
	Errors            []string                `json:"errors"`
	ErrorCount        int                     `json:"error_count"`
}
