package inventory

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// DefaultLowStockThreshold umbral de stock bajo cuando no se configura otro.
const DefaultLowStockThreshold = 2

// StockReportUseCase lecturas agregadas del inventario: valuación y stock bajo.
type StockReportUseCase struct {
	inventoryRepo repository.InventoryRepository
	threshold     int
}

// NewStockReportUseCase construye el caso de uso. threshold <= 0 usa DefaultLowStockThreshold.
func NewStockReportUseCase(inventoryRepo repository.InventoryRepository, threshold int) *StockReportUseCase {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &StockReportUseCase{inventoryRepo: inventoryRepo, threshold: threshold}
}

// Valuation valor a costo y a precio de venta de las piezas en stock, por categoría.
// location vacío = ambas regiones.
func (uc *StockReportUseCase) Valuation(ctx context.Context, location string) (*reporting.InventoryValuation, error) {
	items, err := uc.inventoryRepo.ListInStock(ctx, location)
	if err != nil {
		return nil, err
	}
	v := reporting.ValueInventory(items)
	return &v, nil
}

// LowStock piezas en stock con quantity <= umbral, de menor a mayor cantidad.
func (uc *StockReportUseCase) LowStock(ctx context.Context) (*dto.LowStockResponse, error) {
	items, err := uc.inventoryRepo.ListLowStock(ctx, uc.threshold)
	if err != nil {
		return nil, err
	}
	return &dto.LowStockResponse{
		Threshold: uc.threshold,
		Count:     len(items),
		Items:     dto.NewInventoryItemResponses(items),
	}, nil
}
