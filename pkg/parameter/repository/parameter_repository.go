package repository

import (
	"errors"

	"engineview/entities"
)

// ErrParameterInUse is returned when deleting a parameter type that still has
// stored values.
var ErrParameterInUse = errors.New("parameter type is referenced by stored values")

type ParameterRepository interface {
	// List returns parameter types; with includeInactive=false only active
	// ones, in default order.
	List(includeInactive bool) ([]entities.ParameterType, error)
	Get(id uint) (*entities.ParameterType, error)
	GetByCode(code string) (*entities.ParameterType, error)
	Create(p *entities.ParameterType) error
	Update(p *entities.ParameterType) error
	// GetOrCreate atomically creates p unless a type with the same code
	// exists, in which case the existing one is returned. The second return
	// reports whether a row was created.
	GetOrCreate(p *entities.ParameterType) (*entities.ParameterType, bool, error)
	// Delete removes a parameter type; it fails with ErrParameterInUse while
	// any ParameterValue references it.
	Delete(id uint) error
}
