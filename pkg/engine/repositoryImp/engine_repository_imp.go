package repositoryImp

import (
	"gorm.io/gorm"

	"engineview/entities"
	"engineview/pkg/engine/repository"
)

type engineRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EngineRepository { return &engineRepo{db} }

func (r *engineRepo) List() ([]entities.Engine, error) {
	var out []entities.Engine
	if err := r.db.Preload("Vessel").Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *engineRepo) ListByVessel(vesselID uint) ([]entities.Engine, error) {
	var out []entities.Engine
	if err := r.db.Where("vessel_id = ?", vesselID).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *engineRepo) Get(id uint) (*entities.Engine, error) {
	var e entities.Engine
	if err := r.db.Preload("Vessel").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *engineRepo) GetBySerial(serial string) (*entities.Engine, error) {
	var e entities.Engine
	if err := r.db.Where("serial_number = ?", serial).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *engineRepo) Create(e *entities.Engine) error { return r.db.Create(e).Error }

func (r *engineRepo) Update(e *entities.Engine) error { return r.db.Save(e).Error }

func (r *engineRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Engine{}, id).Error
}
