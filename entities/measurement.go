package entities

import "time"

type Measurement struct {
	MeasurementID uint      `gorm:"primaryKey" json:"measurement_id"`
	EngineID      uint      `gorm:"index" json:"engine_id"`
	Engine        *Engine   `json:"engine,omitempty"`
	Timestamp     time.Time `gorm:"index" json:"timestamp"`
	Notes         string    `json:"notes"`
	CreatedBy     string    `json:"created_by"`

	ParameterValues []ParameterValue `gorm:"foreignKey:MeasurementID;constraint:OnDelete:CASCADE" json:"parameter_values,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ParameterValue holds one numeric reading of one ParameterType within one
// Measurement. The (measurement, parameter_type) pair is unique.
type ParameterValue struct {
	ParameterValueID uint           `gorm:"primaryKey" json:"parameter_value_id"`
	MeasurementID    uint           `gorm:"uniqueIndex:idx_measurement_parameter" json:"measurement_id"`
	ParameterTypeID  uint           `gorm:"uniqueIndex:idx_measurement_parameter" json:"parameter_type_id"`
	ParameterType    *ParameterType `json:"parameter_type,omitempty"`
	Value            float64        `json:"value"`
}
