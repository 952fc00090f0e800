package logistics

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// ── Repos en memoria ──

type memVehicles struct{ byID map[string]*entity.Vehicle }

func (r *memVehicles) Create(_ context.Context, v *entity.Vehicle) error {
	r.byID[v.ID] = v
	return nil
}

func (r *memVehicles) GetByID(_ context.Context, id string) (*entity.Vehicle, error) {
	return r.byID[id], nil
}

func (r *memVehicles) List(_ context.Context, f repository.VehicleFilter, _ repository.Page) ([]*entity.Vehicle, int, error) {
	out := []*entity.Vehicle{}
	for _, v := range r.byID {
		if f.ContainerID != "" && (v.ContainerID == nil || *v.ContainerID != f.ContainerID) {
			continue
		}
		out = append(out, v)
	}
	return out, len(out), nil
}

func (r *memVehicles) Search(_ context.Context, q string, limit int) ([]*entity.Vehicle, error) {
	out := []*entity.Vehicle{}
	for _, v := range r.byID {
		if strings.Contains(strings.ToLower(v.Make+" "+v.Model+" "+v.ChassisNumber), strings.ToLower(q)) && len(out) < limit {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVehicles) Update(_ context.Context, v *entity.Vehicle) error {
	r.byID[v.ID] = v
	return nil
}

func (r *memVehicles) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memVehicles) AssignContainer(_ context.Context, containerID string, ids []string) (int, error) {
	n := 0
	for _, id := range ids {
		if v, ok := r.byID[id]; ok {
			cid := containerID
			v.ContainerID = &cid
			if v.Status == entity.VehicleStatusPurchased {
				v.Status = entity.VehicleStatusInTransit
			}
			n++
		}
	}
	return n, nil
}

type memContainers struct{ byID map[string]*entity.Container }

func (r *memContainers) Create(_ context.Context, c *entity.Container) error {
	r.byID[c.ID] = c
	return nil
}

func (r *memContainers) GetByID(_ context.Context, id string) (*entity.Container, error) {
	return r.byID[id], nil
}

func (r *memContainers) List(context.Context, repository.ContainerFilter, repository.Page) ([]*entity.Container, int, error) {
	out := []*entity.Container{}
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (r *memContainers) Update(_ context.Context, c *entity.Container) error {
	r.byID[c.ID] = c
	return nil
}

func (r *memContainers) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// memParts solo implementa las lecturas que usa logística.
type memParts struct {
	repository.InventoryRepository
	items    []*entity.InventoryItem
	vehicles *memVehicles
}

func (r *memParts) List(_ context.Context, f repository.InventoryFilter, _ repository.Page) ([]*entity.InventoryItem, int, error) {
	out := []*entity.InventoryItem{}
	for _, it := range r.items {
		if f.VehicleID != "" && (it.VehicleID == nil || *it.VehicleID != f.VehicleID) {
			continue
		}
		out = append(out, it)
	}
	return out, len(out), nil
}

func (r *memParts) ListByContainer(_ context.Context, containerID string) ([]*entity.InventoryItem, error) {
	out := []*entity.InventoryItem{}
	for _, it := range r.items {
		if it.VehicleID == nil {
			continue
		}
		v := r.vehicles.byID[*it.VehicleID]
		if v != nil && v.ContainerID != nil && *v.ContainerID == containerID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fixture struct {
	vehicles   *memVehicles
	containers *memContainers
	parts      *memParts
}

func newFixture() *fixture {
	v := &memVehicles{byID: map[string]*entity.Vehicle{}}
	return &fixture{
		vehicles:   v,
		containers: &memContainers{byID: map[string]*entity.Container{}},
		parts:      &memParts{vehicles: v},
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

func purchaseDate() *dto.Date {
	dd := dto.NewDate(time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC))
	return &dd
}

// ── Contenedores ──

func TestContainer_TotalCostEsSumaDeCostos(t *testing.T) {
	f := newFixture()
	uc := NewContainerUseCase(f.containers, f.vehicles, f.parts)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.ContainerRequest{
		ContainerNumber: " MSCU1234567 ",
		ShippingCost:    d("2500"),
		InsuranceCost:   d("150.50"),
		CustomsDuty:     d("800"),
		ClearanceFees:   d("120"),
		TransportCost:   d("300"),
	})
	require.NoError(t, err)
	assert.Equal(t, "MSCU1234567", c.ContainerNumber)
	assert.True(t, d("3870.50").Equal(c.TotalCost), "total_cost=%s", c.TotalCost)
	assert.Equal(t, entity.ContainerStatusLoading, c.Status)
	assert.Equal(t, entity.CurrencyUSD, c.Currency)

	up, err := uc.Update(ctx, c.ID, dto.ContainerRequest{ContainerNumber: "MSCU1234567", ShippingCost: d("1000")})
	require.NoError(t, err)
	assert.True(t, d("1000").Equal(up.TotalCost))
	assert.True(t, d("1000").Equal(f.containers.byID[c.ID].TotalCost), "la fila guardada conserva el invariante")

	_, err = uc.Update(ctx, "no-existe", dto.ContainerRequest{ContainerNumber: "X"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestContainer_AsignarVehiculos(t *testing.T) {
	f := newFixture()
	uc := NewContainerUseCase(f.containers, f.vehicles, f.parts)
	vuc := NewVehicleUseCase(f.vehicles, f.containers, f.parts)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.ContainerRequest{ContainerNumber: "TGHU0001"})
	require.NoError(t, err)
	v1, err := vuc.Create(ctx, dto.VehicleRequest{ChassisNumber: "NZE141-001", Make: "Toyota", Model: "Corolla", Year: 2012, PurchaseDate: purchaseDate()})
	require.NoError(t, err)
	v2, err := vuc.Create(ctx, dto.VehicleRequest{ChassisNumber: "GP5-777", Make: "Honda", Model: "Fit", Year: 2014, PurchaseDate: purchaseDate()})
	require.NoError(t, err)

	_, err = uc.AssignVehicles(ctx, c.ID, dto.AssignVehiclesRequest{VehicleIDs: []string{v1.ID, "b8a0d1c4-0000-0000-0000-000000000000"}})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Nil(t, f.vehicles.byID[v1.ID].ContainerID, "nada se asigna si falta un vehículo")

	res, err := uc.AssignVehicles(ctx, c.ID, dto.AssignVehiclesRequest{VehicleIDs: []string{v1.ID, v2.ID, v1.ID}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Assigned)
	assert.Equal(t, entity.VehicleStatusInTransit, f.vehicles.byID[v1.ID].Status)

	got, err := uc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, got.Vehicles, 2)
}

func TestContainer_ProfitLoss(t *testing.T) {
	f := newFixture()
	uc := NewContainerUseCase(f.containers, f.vehicles, f.parts)
	ctx := context.Background()

	f.containers.byID["c1"] = &entity.Container{ID: "c1", ContainerNumber: "C-1", ShippingCost: d("1000"), TotalCost: d("1000")}
	f.vehicles.byID["v1"] = &entity.Vehicle{ID: "v1", PurchasePrice: d("4000"), ContainerID: strPtr("c1")}
	f.parts.items = []*entity.InventoryItem{
		{ID: "p1", VehicleID: strPtr("v1"), Status: entity.InventoryStatusSold, Quantity: 1, CostPrice: d("500"), SellingPrice: decimal.NewNullDecimal(d("3000"))},
		{ID: "p2", VehicleID: strPtr("v1"), Status: entity.InventoryStatusInStock, Quantity: 2, CostPrice: d("800")},
	}

	pl, err := uc.ProfitLoss(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, pl.VehicleCount)
	assert.True(t, d("5000").Equal(pl.TotalCost))
	assert.True(t, d("3000").Equal(pl.Revenue))
	assert.True(t, d("-2000").Equal(pl.RealizedProfitLoss))
	assert.True(t, d("-400").Equal(pl.ProjectedProfitLoss))

	_, err = uc.ProfitLoss(ctx, "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ── Vehículos ──

func TestVehicle_DefaultsYContenedorInexistente(t *testing.T) {
	f := newFixture()
	uc := NewVehicleUseCase(f.vehicles, f.containers, f.parts)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.VehicleRequest{ChassisNumber: "X", Make: "Nissan", Model: "Note", Year: 2015, ContainerID: strPtr("no-existe")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	v, err := uc.Create(ctx, dto.VehicleRequest{ChassisNumber: "E12-1", Make: "Nissan", Model: "Note", Year: 2015, PurchaseDate: purchaseDate()})
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleStatusPurchased, v.Status)
	assert.Equal(t, entity.LocationJapan, v.Location)
	assert.Equal(t, entity.CurrencyJPY, v.PurchaseCurrency)
	assert.Equal(t, "2025-11-03", v.PurchaseDate.Format("2006-01-02"))

	found, err := uc.Search(ctx, "nissan")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	empty, err := uc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestVehicle_DetalleConContenedorYPiezas(t *testing.T) {
	f := newFixture()
	uc := NewVehicleUseCase(f.vehicles, f.containers, f.parts)
	ctx := context.Background()

	f.containers.byID["c1"] = &entity.Container{ID: "c1", ContainerNumber: "C-1"}
	f.vehicles.byID["v1"] = &entity.Vehicle{ID: "v1", Make: "Toyota", ContainerID: strPtr("c1")}
	f.parts.items = []*entity.InventoryItem{
		{ID: "p1", SKU: "ENG-001", VehicleID: strPtr("v1")},
		{ID: "p2", SKU: "OTHER", VehicleID: strPtr("v2")},
	}

	got, err := uc.Get(ctx, "v1")
	require.NoError(t, err)
	require.NotNil(t, got.Container)
	assert.Equal(t, "C-1", got.Container.ContainerNumber)
	require.Len(t, got.Parts, 1)
	assert.Equal(t, "ENG-001", got.Parts[0].SKU)

	list, err := uc.List(ctx, dto.VehicleFilter{})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.NotNil(t, list.Data[0].Container)
}
