package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// InventoryFilter filtros de listado de piezas.
type InventoryFilter struct {
	Category  string
	Status    string
	Location  string
	VehicleID string
}

// InventoryRepository puerto de persistencia para InventoryItem.
type InventoryRepository interface {
	Create(ctx context.Context, it *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	List(ctx context.Context, f InventoryFilter, p Page) ([]*entity.InventoryItem, int, error)
	Search(ctx context.Context, q string, limit int) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, it *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
	// ListInStock piezas en stock, opcionalmente de una región.
	ListInStock(ctx context.Context, location string) ([]*entity.InventoryItem, error)
	// ListLowStock piezas en stock con quantity <= threshold, ascendente por cantidad.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.InventoryItem, error)
	// ListByContainer piezas obtenidas de vehículos del contenedor.
	ListByContainer(ctx context.Context, containerID string) ([]*entity.InventoryItem, error)
	// Reserve descuenta quantity de forma condicional (quantity >= n) y pasa a sold al llegar a 0.
	// Devuelve ErrNotFound si la pieza no existe y ErrInsufficientStock si no alcanza.
	Reserve(ctx context.Context, id string, quantity int) (*entity.InventoryItem, error)
}
