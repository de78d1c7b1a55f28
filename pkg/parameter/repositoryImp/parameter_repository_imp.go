package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"engineview/entities"
	"engineview/pkg/parameter/repository"
)

type paramRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ParameterRepository { return &paramRepo{db} }

func (r *paramRepo) List(includeInactive bool) ([]entities.ParameterType, error) {
	var out []entities.ParameterType
	q := r.db.Order("parameter_type_id ASC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *paramRepo) Get(id uint) (*entities.ParameterType, error) {
	var p entities.ParameterType
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paramRepo) GetByCode(code string) (*entities.ParameterType, error) {
	var p entities.ParameterType
	if err := r.db.Where("code = ?", code).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paramRepo) Create(p *entities.ParameterType) error { return r.db.Create(p).Error }

func (r *paramRepo) Update(p *entities.ParameterType) error { return r.db.Save(p).Error }

// GetOrCreate relies on the unique index on code: the insert either lands or
// is a no-op, so concurrent imports cannot create duplicate types.
func (r *paramRepo) GetOrCreate(p *entities.ParameterType) (*entities.ParameterType, bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(p)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 1 {
		return p, true, nil
	}
	existing, err := r.GetByCode(p.Code)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *paramRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&entities.ParameterValue{}).Where("parameter_type_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return repository.ErrParameterInUse
		}
		return tx.Delete(&entities.ParameterType{}, id).Error
	})
}
