package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// TransactionFilter filtros de transacciones.
type TransactionFilter struct {
	Type        string
	Category    string
	Location    string
	Status      string
	PropertyID  string
	OrderID     string
	HasProperty bool
	Date        DateRange
}

// TransactionRepository puerto de persistencia para Transaction.
type TransactionRepository interface {
	// Create devuelve ErrNumberCollision si el número ya existe.
	Create(ctx context.Context, t *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	// List ordenado por fecha descendente; Page{} devuelve todas las filas.
	List(ctx context.Context, f TransactionFilter, p Page) ([]*entity.Transaction, int, error)
	Update(ctx context.Context, t *entity.Transaction) error
	Delete(ctx context.Context, id string) error
}
