package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

type memItems struct {
	repository.InventoryRepository
	byID map[string]*entity.InventoryItem
}

func newMemItems(items ...*entity.InventoryItem) *memItems {
	m := &memItems{byID: map[string]*entity.InventoryItem{}}
	for _, it := range items {
		m.byID[it.ID] = it
	}
	return m
}

func (r *memItems) Create(_ context.Context, it *entity.InventoryItem) error {
	for _, other := range r.byID {
		if other.SKU == it.SKU {
			return fmt.Errorf("sku %s: %w", it.SKU, domain.ErrDuplicate)
		}
	}
	r.byID[it.ID] = it
	return nil
}

func (r *memItems) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	return r.byID[id], nil
}

func (r *memItems) Update(_ context.Context, it *entity.InventoryItem) error {
	r.byID[it.ID] = it
	return nil
}

func (r *memItems) ListInStock(_ context.Context, location string) ([]*entity.InventoryItem, error) {
	out := []*entity.InventoryItem{}
	for _, it := range r.byID {
		if it.Status == entity.InventoryStatusInStock && (location == "" || it.Location == location) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memItems) ListLowStock(_ context.Context, threshold int) ([]*entity.InventoryItem, error) {
	out := []*entity.InventoryItem{}
	for _, it := range r.byID {
		if it.Status == entity.InventoryStatusInStock && it.Quantity <= threshold {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out, nil
}

type memVehicles struct {
	repository.VehicleRepository
	byID map[string]*entity.Vehicle
}

func (r *memVehicles) GetByID(_ context.Context, id string) (*entity.Vehicle, error) {
	return r.byID[id], nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(n int) *int { return &n }

func TestCreate_DefaultsYSKUDuplicado(t *testing.T) {
	items := newMemItems()
	uc := NewItemUseCase(items, &memVehicles{byID: map[string]*entity.Vehicle{}})
	ctx := context.Background()

	it, err := uc.Create(ctx, dto.InventoryItemRequest{SKU: " ENG-001 ", PartName: "Motor 1NZ", Category: entity.CategoryEngine, CostPrice: d("700")})
	require.NoError(t, err)
	assert.Equal(t, "ENG-001", it.SKU)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, entity.InventoryStatusInStock, it.Status)
	assert.Equal(t, entity.ConditionGood, it.Condition)
	assert.Equal(t, entity.LocationDubai, it.Location)
	assert.False(t, it.SellingPrice.Valid)
	assert.NotNil(t, it.CompatibleModels)

	_, err = uc.Create(ctx, dto.InventoryItemRequest{SKU: "ENG-001", PartName: "Otro", Category: entity.CategoryEngine})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	_, err = uc.Create(ctx, dto.InventoryItemRequest{SKU: "NEG", PartName: "x", Category: entity.CategoryOther, Quantity: intPtr(-1)})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Create(ctx, dto.InventoryItemRequest{SKU: "VEH", PartName: "x", Category: entity.CategoryOther, VehicleID: strPtr("no-existe")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdate_ConservaCantidadSinQuantity(t *testing.T) {
	items := newMemItems(&entity.InventoryItem{ID: "p1", SKU: "BRK-010", Quantity: 7, Status: entity.InventoryStatusInStock})
	uc := NewItemUseCase(items, &memVehicles{byID: map[string]*entity.Vehicle{}})

	got, err := uc.Update(context.Background(), "p1", dto.InventoryItemRequest{SKU: "BRK-010", PartName: "Pastillas", Category: entity.CategoryBrakes, CostPrice: d("20")})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, "Pastillas", items.byID["p1"].PartName)

	_, err = uc.Update(context.Background(), "nope", dto.InventoryItemRequest{SKU: "x"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGet_IncluyeVehiculo(t *testing.T) {
	items := newMemItems(&entity.InventoryItem{ID: "p1", SKU: "ENG-001", VehicleID: strPtr("v1")})
	vehicles := &memVehicles{byID: map[string]*entity.Vehicle{"v1": {ID: "v1", Make: "Toyota", Model: "Corolla"}}}
	uc := NewItemUseCase(items, vehicles)

	got, err := uc.Get(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, got.Vehicle)
	assert.Equal(t, "Corolla", got.Vehicle.Model)
}

func TestValuation_PorRegion(t *testing.T) {
	items := newMemItems(
		&entity.InventoryItem{ID: "a", Category: entity.CategoryEngine, Status: entity.InventoryStatusInStock, Location: entity.LocationDubai, Quantity: 2, CostPrice: d("100"), SellingPrice: decimal.NewNullDecimal(d("150"))},
		&entity.InventoryItem{ID: "b", Category: entity.CategoryBody, Status: entity.InventoryStatusInStock, Location: entity.LocationDubai, Quantity: 1, CostPrice: d("40")},
		&entity.InventoryItem{ID: "c", Category: entity.CategoryBody, Status: entity.InventoryStatusInStock, Location: entity.LocationJapan, Quantity: 5, CostPrice: d("10")},
		&entity.InventoryItem{ID: "d", Category: entity.CategoryBody, Status: entity.InventoryStatusSold, Location: entity.LocationDubai, Quantity: 0, CostPrice: d("999")},
	)
	uc := NewStockReportUseCase(items, 0)

	v, err := uc.Valuation(context.Background(), entity.LocationDubai)
	require.NoError(t, err)
	assert.Equal(t, 2, v.TotalItems)
	assert.True(t, d("240").Equal(v.TotalCostValue))
	assert.True(t, d("340").Equal(v.TotalSellValue), "sin precio de venta se valora al costo")
	assert.True(t, d("100").Equal(v.PotentialProfit))
}

func TestLowStock_UmbralConfigurable(t *testing.T) {
	items := newMemItems(
		&entity.InventoryItem{ID: "a", Status: entity.InventoryStatusInStock, Quantity: 3},
		&entity.InventoryItem{ID: "b", Status: entity.InventoryStatusInStock, Quantity: 1},
		&entity.InventoryItem{ID: "c", Status: entity.InventoryStatusInStock, Quantity: 2},
		&entity.InventoryItem{ID: "d", Status: entity.InventoryStatusSold, Quantity: 0},
	)

	res, err := NewStockReportUseCase(items, 0).LowStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultLowStockThreshold, res.Threshold)
	require.Equal(t, 2, res.Count)
	assert.Equal(t, "b", res.Items[0].ID)
	assert.Equal(t, "c", res.Items[1].ID)

	res, err = NewStockReportUseCase(items, 3).LowStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
}

func strPtr(s string) *string { return &s }
