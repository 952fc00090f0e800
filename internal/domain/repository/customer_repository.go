package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// CustomerFilter filtros de listado de clientes.
type CustomerFilter struct {
	Type     string
	IsActive *bool
}

// CustomerRepository puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, f CustomerFilter, p Page) ([]*entity.Customer, int, error)
	Search(ctx context.Context, q string, limit int) ([]*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
