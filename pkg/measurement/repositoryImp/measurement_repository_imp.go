package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"engineview/entities"
	"engineview/pkg/measurement/repository"
)

type measurementRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MeasurementRepository { return &measurementRepo{db} }

func (r *measurementRepo) filtered(f repository.Filter) *gorm.DB {
	q := r.db.Model(&entities.Measurement{})
	if f.VesselID != nil {
		q = q.Joins("JOIN engines ON engines.engine_id = measurements.engine_id").
			Where("engines.vessel_id = ?", *f.VesselID)
	}
	if f.EngineID != nil {
		q = q.Where("measurements.engine_id = ?", *f.EngineID)
	}
	if f.DateFrom != nil {
		q = q.Where("measurements.timestamp >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("measurements.timestamp < ?", *f.DateTo)
	}
	return q
}

func (r *measurementRepo) List(f repository.Filter) ([]entities.Measurement, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	var out []entities.Measurement
	err := r.filtered(f).
		Preload("Engine.Vessel").
		Preload("ParameterValues.ParameterType").
		Order("measurements.timestamp DESC").
		Offset((page - 1) * repository.PageSize).
		Limit(repository.PageSize).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *measurementRepo) Window(vesselID, engineID *uint, since time.Time) ([]entities.Measurement, error) {
	f := repository.Filter{VesselID: vesselID, EngineID: engineID, DateFrom: &since}
	var out []entities.Measurement
	err := r.filtered(f).
		Preload("Engine.Vessel").
		Preload("ParameterValues.ParameterType").
		Order("measurements.timestamp ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *measurementRepo) Get(id uint) (*entities.Measurement, error) {
	var m entities.Measurement
	err := r.db.
		Preload("Engine.Vessel").
		Preload("ParameterValues.ParameterType").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *measurementRepo) Create(m *entities.Measurement) error { return r.db.Create(m).Error }

func (r *measurementRepo) CreateValue(v *entities.ParameterValue) error {
	return r.db.Create(v).Error
}

func (r *measurementRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Measurement{}, id).Error
}

func (r *measurementRepo) CountSince(since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&entities.Measurement{}).Where("timestamp >= ?", since).Count(&n).Error
	return n, err
}
