package database

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"engineview/entities"
)

// standardParameters are the engine parameters the system ships with. Imports
// and manual entry can add more at runtime.
var standardParameters = []entities.ParameterType{
	{Name: "Temperature", Code: "temperature", Unit: "°C", IsActive: true},
	{Name: "Pressure", Code: "pressure", Unit: "bar", IsActive: true},
	{Name: "RPM", Code: "rpm", Unit: "rpm", IsActive: true},
	{Name: "Fuel Consumption", Code: "fuel_consumption", Unit: "l/h", IsActive: true},
	{Name: "Oil Pressure", Code: "oil_pressure", Unit: "bar", IsActive: true},
	{Name: "Coolant Temperature", Code: "coolant_temperature", Unit: "°C", IsActive: true},
}

// SeedParameterTypes inserts the standard parameter set, skipping codes that
// already exist.
func SeedParameterTypes(db *gorm.DB) error {
	for i := range standardParameters {
		p := standardParameters[i]
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(&p)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			log.Printf("[seed] created parameter type %q", p.Code)
		}
	}
	return nil
}
