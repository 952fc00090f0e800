package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// PropertyFilter filtros de listado de inmuebles.
type PropertyFilter struct {
	Type      string
	Location  string
	Ownership string
	Status    string
}

// PropertyRepository puerto de persistencia para Property.
type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context, f PropertyFilter, p Page) ([]*entity.Property, int, error)
	Update(ctx context.Context, p *entity.Property) error
	Delete(ctx context.Context, id string) error
}
