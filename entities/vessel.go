package entities

import "time"

type Vessel struct {
	VesselID  uint   `gorm:"primaryKey" json:"vessel_id"`
	Name      string `json:"name"`
	IMONumber string `gorm:"column:imo_number;uniqueIndex" json:"imo_number"`

	Engines []Engine `gorm:"foreignKey:VesselID;constraint:OnDelete:CASCADE" json:"engines,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
