package logistics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// ContainerUseCase CRUD de contenedores, asignación de vehículos y P/L por contenedor.
type ContainerUseCase struct {
	containerRepo repository.ContainerRepository
	vehicleRepo   repository.VehicleRepository
	inventoryRepo repository.InventoryRepository
}

// NewContainerUseCase construye el caso de uso.
func NewContainerUseCase(
	containerRepo repository.ContainerRepository,
	vehicleRepo repository.VehicleRepository,
	inventoryRepo repository.InventoryRepository,
) *ContainerUseCase {
	return &ContainerUseCase{
		containerRepo: containerRepo,
		vehicleRepo:   vehicleRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Create registra un contenedor; total_cost se deriva de los cinco costos.
func (uc *ContainerUseCase) Create(ctx context.Context, in dto.ContainerRequest) (*dto.ContainerResponse, error) {
	now := time.Now()
	c := &entity.Container{ID: uuid.New().String(), CreatedAt: now}
	applyContainer(c, in)
	c.UpdatedAt = now
	if err := uc.containerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewContainerResponse(c)
	return &resp, nil
}

// Get detalle con los vehículos asignados.
func (uc *ContainerUseCase) Get(ctx context.Context, id string) (*dto.ContainerResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicles, err := uc.vehicles(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewContainerResponse(c)
	resp.Vehicles = dto.NewVehicleResponses(vehicles)
	return &resp, nil
}

// List contenedores paginados.
func (uc *ContainerUseCase) List(ctx context.Context, f dto.ContainerFilter) (*dto.ListResponse[dto.ContainerResponse], error) {
	list, total, err := uc.containerRepo.List(ctx, repository.ContainerFilter{Status: f.Status}, f.ToRepo())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContainerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewContainerResponse(c))
	}
	page := dto.NewListResponse(out, total, f.PageRequest)
	return &page, nil
}

// Update reemplaza los campos editables y recalcula total_cost.
func (uc *ContainerUseCase) Update(ctx context.Context, id string, in dto.ContainerRequest) (*dto.ContainerResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyContainer(c, in)
	c.UpdatedAt = time.Now()
	if err := uc.containerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewContainerResponse(c)
	return &resp, nil
}

// Delete borra el contenedor; sus vehículos quedan sin contenedor.
func (uc *ContainerUseCase) Delete(ctx context.Context, id string) error {
	return uc.containerRepo.Delete(ctx, id)
}

// AssignVehicles vincula vehículos existentes al contenedor. Si alguno no existe no se asigna ninguno.
func (uc *ContainerUseCase) AssignVehicles(ctx context.Context, id string, in dto.AssignVehiclesRequest) (*dto.AssignVehiclesResponse, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(in.VehicleIDs))
	seen := map[string]bool{}
	for _, vid := range in.VehicleIDs {
		if seen[vid] {
			continue
		}
		seen[vid] = true
		v, err := uc.vehicleRepo.GetByID(ctx, vid)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("vehículo %s: %w", vid, domain.ErrNotFound)
		}
		ids = append(ids, vid)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("vehicle_ids vacío: %w", domain.ErrInvalidInput)
	}
	n, err := uc.vehicleRepo.AssignContainer(ctx, id, ids)
	if err != nil {
		return nil, err
	}
	return &dto.AssignVehiclesResponse{ContainerID: id, Assigned: n}, nil
}

// ProfitLoss P/L del contenedor con sus vehículos y las piezas obtenidas de ellos.
func (uc *ContainerUseCase) ProfitLoss(ctx context.Context, id string) (*reporting.ContainerPL, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicles, err := uc.vehicles(ctx, id)
	if err != nil {
		return nil, err
	}
	parts, err := uc.inventoryRepo.ListByContainer(ctx, id)
	if err != nil {
		return nil, err
	}
	pl := reporting.ComputeContainerPL(c, vehicles, parts)
	return &pl, nil
}

func (uc *ContainerUseCase) vehicles(ctx context.Context, containerID string) ([]*entity.Vehicle, error) {
	list, _, err := uc.vehicleRepo.List(ctx, repository.VehicleFilter{ContainerID: containerID}, repository.Page{})
	return list, err
}

func (uc *ContainerUseCase) get(ctx context.Context, id string) (*entity.Container, error) {
	c, err := uc.containerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("contenedor %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func applyContainer(c *entity.Container, in dto.ContainerRequest) {
	c.ContainerNumber = strings.TrimSpace(in.ContainerNumber)
	c.BookingNumber = in.BookingNumber
	c.ShippingLine = in.ShippingLine
	c.Size = orDefault(in.Size, entity.ContainerSize40ft)
	c.Origin = orDefault(in.Origin, "Japan")
	c.Destination = orDefault(in.Destination, "Dubai")
	c.DepartureDate = in.DepartureDate.TimePtr()
	c.ArrivalDate = in.ArrivalDate.TimePtr()
	c.ActualArrivalDate = in.ActualArrivalDate.TimePtr()
	c.Status = orDefault(in.Status, entity.ContainerStatusLoading)
	c.ShippingCost = in.ShippingCost
	c.InsuranceCost = in.InsuranceCost
	c.CustomsDuty = in.CustomsDuty
	c.ClearanceFees = in.ClearanceFees
	c.TransportCost = in.TransportCost
	c.TotalCost = c.CostSum()
	c.Currency = orDefault(in.Currency, entity.CurrencyUSD)
	c.Notes = in.Notes
}
