package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// OrderFilter filtros de listado de órdenes.
type OrderFilter struct {
	Status           string
	PaymentStatus    string
	Location         string
	CustomerID       string
	ExcludeCancelled bool
	Unpaid           bool // paymentStatus != paid
	OrderDate        DateRange
}

// OrderRepository puerto de persistencia para Order y OrderItem.
type OrderRepository interface {
	// Create inserta la cabecera. Devuelve ErrNumberCollision si el número ya existe.
	Create(ctx context.Context, o *entity.Order) error
	CreateItem(ctx context.Context, it *entity.OrderItem) error
	// GetByID cabecera con el cliente cargado.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetForUpdate cabecera bloqueando la fila (SELECT ... FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	// ListItems líneas de la orden con la pieza cargada.
	ListItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	// List con paginación; Page{} devuelve todas las filas. Cada orden trae su cliente.
	List(ctx context.Context, f OrderFilter, p Page) ([]*entity.Order, int, error)
	Update(ctx context.Context, o *entity.Order) error
	Delete(ctx context.Context, id string) error
}
