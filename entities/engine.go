package entities

import "time"

type Engine struct {
	EngineID     uint    `gorm:"primaryKey" json:"engine_id"`
	VesselID     uint    `gorm:"index" json:"vessel_id"`
	Vessel       *Vessel `json:"vessel,omitempty"`
	Name         string  `json:"name"`
	Model        string  `json:"model"`
	SerialNumber string  `gorm:"uniqueIndex" json:"serial_number"`

	Measurements []Measurement `gorm:"foreignKey:EngineID;constraint:OnDelete:CASCADE" json:"measurements,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
