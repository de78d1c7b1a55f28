package entities

import "time"

// ParameterType is a named, unit-typed measurable quantity. Codes are unique
// slugs; a type referenced by stored values must not be deleted. Inactive
// types are hidden from entry forms but keep their historical values.
type ParameterType struct {
	ParameterTypeID uint     `gorm:"primaryKey" json:"parameter_type_id"`
	Name            string   `json:"name"`
	Code            string   `gorm:"uniqueIndex" json:"code"`
	Unit            string   `json:"unit"`
	Description     string   `json:"description"`
	MinValue        *float64 `json:"min_value"`
	MaxValue        *float64 `json:"max_value"`
	IsActive        bool     `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}
