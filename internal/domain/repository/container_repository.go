package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// ContainerFilter filtros de listado de contenedores.
type ContainerFilter struct {
	Status  string
	Arrival DateRange // sobre arrival_date
}

// ContainerRepository puerto de persistencia para Container.
type ContainerRepository interface {
	Create(ctx context.Context, c *entity.Container) error
	GetByID(ctx context.Context, id string) (*entity.Container, error)
	List(ctx context.Context, f ContainerFilter, p Page) ([]*entity.Container, int, error)
	Update(ctx context.Context, c *entity.Container) error
	Delete(ctx context.Context, id string) error
}
