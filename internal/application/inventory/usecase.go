// Package inventory casos de uso de piezas en inventario: CRUD, búsqueda, valuación y stock bajo.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// SearchLimit máximo de resultados de una búsqueda.
const SearchLimit = 20

// ItemUseCase CRUD de piezas.
type ItemUseCase struct {
	inventoryRepo repository.InventoryRepository
	vehicleRepo   repository.VehicleRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(inventoryRepo repository.InventoryRepository, vehicleRepo repository.VehicleRepository) *ItemUseCase {
	return &ItemUseCase{inventoryRepo: inventoryRepo, vehicleRepo: vehicleRepo}
}

// Create da de alta una pieza. El SKU es único (ErrDuplicate).
func (uc *ItemUseCase) Create(ctx context.Context, in dto.InventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := uc.checkVehicle(ctx, in.VehicleID); err != nil {
		return nil, err
	}
	now := time.Now()
	it := &entity.InventoryItem{ID: uuid.New().String(), Quantity: 1, CreatedAt: now}
	if err := applyItem(it, in); err != nil {
		return nil, err
	}
	it.UpdatedAt = now
	if err := uc.inventoryRepo.Create(ctx, it); err != nil {
		return nil, err
	}
	resp := dto.NewInventoryItemResponse(it)
	return &resp, nil
}

// Get detalle con el vehículo de origen.
func (uc *ItemUseCase) Get(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	it, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewInventoryItemResponse(it)
	if it.VehicleID != nil {
		v, err := uc.vehicleRepo.GetByID(ctx, *it.VehicleID)
		if err != nil {
			return nil, err
		}
		if v != nil {
			vr := dto.NewVehicleResponse(v)
			resp.Vehicle = &vr
		}
	}
	return &resp, nil
}

// List piezas paginadas.
func (uc *ItemUseCase) List(ctx context.Context, f dto.InventoryFilter) (*dto.ListResponse[dto.InventoryItemResponse], error) {
	filter := repository.InventoryFilter{
		Category:  f.Category,
		Status:    f.Status,
		Location:  f.Location,
		VehicleID: f.VehicleID,
	}
	list, total, err := uc.inventoryRepo.List(ctx, filter, f.ToRepo())
	if err != nil {
		return nil, err
	}
	page := dto.NewListResponse(dto.NewInventoryItemResponses(list), total, f.PageRequest)
	return &page, nil
}

// Search por SKU, nombre o número de parte.
func (uc *ItemUseCase) Search(ctx context.Context, q string) ([]dto.InventoryItemResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.InventoryItemResponse{}, nil
	}
	list, err := uc.inventoryRepo.Search(ctx, q, SearchLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewInventoryItemResponses(list), nil
}

// Update reemplaza los campos editables. Sin quantity se conserva la actual.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.InventoryItemRequest) (*dto.InventoryItemResponse, error) {
	it, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkVehicle(ctx, in.VehicleID); err != nil {
		return nil, err
	}
	if err := applyItem(it, in); err != nil {
		return nil, err
	}
	it.UpdatedAt = time.Now()
	if err := uc.inventoryRepo.Update(ctx, it); err != nil {
		return nil, err
	}
	resp := dto.NewInventoryItemResponse(it)
	return &resp, nil
}

// Delete borra la pieza. Si figura en alguna orden la base lo impide (ErrConflict).
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.inventoryRepo.Delete(ctx, id)
}

func (uc *ItemUseCase) get(ctx context.Context, id string) (*entity.InventoryItem, error) {
	it, err := uc.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("pieza %s: %w", id, domain.ErrNotFound)
	}
	return it, nil
}

func (uc *ItemUseCase) checkVehicle(ctx context.Context, vehicleID *string) error {
	if vehicleID == nil || *vehicleID == "" {
		return nil
	}
	v, err := uc.vehicleRepo.GetByID(ctx, *vehicleID)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("vehículo %s: %w", *vehicleID, domain.ErrNotFound)
	}
	return nil
}

func applyItem(it *entity.InventoryItem, in dto.InventoryItemRequest) error {
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return fmt.Errorf("quantity no puede ser negativa: %w", domain.ErrInvalidInput)
		}
		it.Quantity = *in.Quantity
	}
	if in.CostPrice.IsNegative() || (in.SellingPrice.Valid && in.SellingPrice.Decimal.IsNegative()) {
		return fmt.Errorf("precios no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	it.SKU = strings.TrimSpace(in.SKU)
	it.PartName = strings.TrimSpace(in.PartName)
	it.PartNumber = in.PartNumber
	it.Category = in.Category
	it.Condition = orDefault(in.Condition, entity.ConditionGood)
	it.CostPrice = in.CostPrice
	it.SellingPrice = in.SellingPrice
	it.Currency = orDefault(in.Currency, entity.CurrencyAED)
	it.Location = orDefault(in.Location, entity.LocationDubai)
	it.WarehouseLocation = in.WarehouseLocation
	it.ShelfNumber = in.ShelfNumber
	it.Status = orDefault(in.Status, entity.InventoryStatusInStock)
	it.VehicleID = dto.Trimmed(in.VehicleID)
	it.CompatibleModels = in.CompatibleModels
	it.Images = in.Images
	it.Notes = in.Notes
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
