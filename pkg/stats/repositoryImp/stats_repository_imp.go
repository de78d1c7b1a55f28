package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"engineview/entities"
	"engineview/pkg/stats/repository"
)

type statsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StatsRepository { return &statsRepo{db} }

func (r *statsRepo) Summary() (*repository.Summary, error) {
	var s repository.Summary
	if err := r.db.Model(&entities.Vessel{}).Count(&s.VesselsCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Engine{}).Count(&s.EnginesCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Measurement{}).Count(&s.MeasurementsCount).Error; err != nil {
		return nil, err
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := r.db.Model(&entities.Measurement{}).Where("timestamp >= ?", weekAgo).Count(&s.LastWeekCount).Error; err != nil {
		return nil, err
	}

	var last entities.Measurement
	err := r.db.Order("timestamp DESC").First(&last).Error
	switch {
	case err == nil:
		s.LastMeasurementAt = &last.Timestamp
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	return &s, nil
}

func (r *statsRepo) VesselStats() ([]repository.VesselStats, error) {
	var vessels []entities.Vessel
	if err := r.db.Preload("Engines").Order("name ASC").Find(&vessels).Error; err != nil {
		return nil, err
	}

	out := make([]repository.VesselStats, 0, len(vessels))
	for _, v := range vessels {
		vs := repository.VesselStats{
			Vessel:       v,
			EnginesCount: int64(len(v.Engines)),
			Engines:      []repository.EngineStats{},
		}
		for _, e := range v.Engines {
			es := repository.EngineStats{Engine: e}
			if err := r.db.Model(&entities.Measurement{}).Where("engine_id = ?", e.EngineID).Count(&es.MeasurementsCount).Error; err != nil {
				return nil, err
			}
			var last entities.Measurement
			err := r.db.Where("engine_id = ?", e.EngineID).Order("timestamp DESC").First(&last).Error
			switch {
			case err == nil:
				es.LastMeasurement = &last
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return nil, err
			}
			vs.MeasurementsCount += es.MeasurementsCount
			vs.Engines = append(vs.Engines, es)
		}
		out = append(out, vs)
	}
	return out, nil
}
