package repository

import "engineview/entities"

type VesselRepository interface {
	List() ([]entities.Vessel, error)
	Get(id uint) (*entities.Vessel, error)
	GetByIMO(imo string) (*entities.Vessel, error)
	Create(v *entities.Vessel) error
	Update(v *entities.Vessel) error
	Delete(id uint) error
}
