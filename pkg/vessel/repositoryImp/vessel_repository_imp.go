package repositoryImp

import (
	"gorm.io/gorm"

	"engineview/entities"
	"engineview/pkg/vessel/repository"
)

type vesselRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.VesselRepository { return &vesselRepo{db} }

func (r *vesselRepo) List() ([]entities.Vessel, error) {
	var out []entities.Vessel
	if err := r.db.Preload("Engines").Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *vesselRepo) Get(id uint) (*entities.Vessel, error) {
	var v entities.Vessel
	if err := r.db.Preload("Engines").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vesselRepo) GetByIMO(imo string) (*entities.Vessel, error) {
	var v entities.Vessel
	if err := r.db.Where("imo_number = ?", imo).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vesselRepo) Create(v *entities.Vessel) error { return r.db.Create(v).Error }

func (r *vesselRepo) Update(v *entities.Vessel) error { return r.db.Save(v).Error }

func (r *vesselRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Vessel{}, id).Error
}
