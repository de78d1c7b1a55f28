package repository

import "engineview/entities"

type EngineRepository interface {
	List() ([]entities.Engine, error)
	ListByVessel(vesselID uint) ([]entities.Engine, error)
	Get(id uint) (*entities.Engine, error)
	GetBySerial(serial string) (*entities.Engine, error)
	Create(e *entities.Engine) error
	Update(e *entities.Engine) error
	Delete(id uint) error
}
