// Package logistics casos de uso de vehículos comprados y de los contenedores que los transportan.
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
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// SearchLimit máximo de resultados de una búsqueda.
const SearchLimit = 20

// VehicleUseCase CRUD de vehículos.
type VehicleUseCase struct {
	vehicleRepo   repository.VehicleRepository
	containerRepo repository.ContainerRepository
	inventoryRepo repository.InventoryRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(
	vehicleRepo repository.VehicleRepository,
	containerRepo repository.ContainerRepository,
	inventoryRepo repository.InventoryRepository,
) *VehicleUseCase {
	return &VehicleUseCase{
		vehicleRepo:   vehicleRepo,
		containerRepo: containerRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Create registra un vehículo. Si trae container_id, el contenedor debe existir.
func (uc *VehicleUseCase) Create(ctx context.Context, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	if err := uc.checkContainer(ctx, in.ContainerID); err != nil {
		return nil, err
	}
	now := time.Now()
	v := &entity.Vehicle{ID: uuid.New().String(), CreatedAt: now}
	applyVehicle(v, in)
	v.UpdatedAt = now
	if err := uc.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := dto.NewVehicleResponse(v)
	return &resp, nil
}

// Get detalle con su contenedor y las piezas obtenidas del vehículo.
func (uc *VehicleUseCase) Get(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	v, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewVehicleResponse(v)
	if v.ContainerID != nil {
		c, err := uc.containerRepo.GetByID(ctx, *v.ContainerID)
		if err != nil {
			return nil, err
		}
		if c != nil {
			cr := dto.NewContainerResponse(c)
			resp.Container = &cr
		}
	}
	parts, _, err := uc.inventoryRepo.List(ctx, repository.InventoryFilter{VehicleID: v.ID}, repository.Page{})
	if err != nil {
		return nil, err
	}
	resp.Parts = dto.NewInventoryItemResponses(parts)
	return &resp, nil
}

// List vehículos paginados, cada uno con su contenedor si tiene.
func (uc *VehicleUseCase) List(ctx context.Context, f dto.VehicleFilter) (*dto.ListResponse[dto.VehicleResponse], error) {
	filter := repository.VehicleFilter{Status: f.Status, Location: f.Location, ContainerID: f.ContainerID}
	list, total, err := uc.vehicleRepo.List(ctx, filter, f.ToRepo())
	if err != nil {
		return nil, err
	}
	containers := map[string]*dto.ContainerResponse{}
	out := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		resp := dto.NewVehicleResponse(v)
		if v.ContainerID != nil {
			cr, ok := containers[*v.ContainerID]
			if !ok {
				c, err := uc.containerRepo.GetByID(ctx, *v.ContainerID)
				if err != nil {
					return nil, err
				}
				if c != nil {
					r := dto.NewContainerResponse(c)
					cr = &r
				}
				containers[*v.ContainerID] = cr
			}
			resp.Container = cr
		}
		out = append(out, resp)
	}
	page := dto.NewListResponse(out, total, f.PageRequest)
	return &page, nil
}

// Search por chasis, marca o modelo.
func (uc *VehicleUseCase) Search(ctx context.Context, q string) ([]dto.VehicleResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.VehicleResponse{}, nil
	}
	list, err := uc.vehicleRepo.Search(ctx, q, SearchLimit)
	if err != nil {
		return nil, err
	}
	return dto.NewVehicleResponses(list), nil
}

// Update reemplaza los campos editables.
func (uc *VehicleUseCase) Update(ctx context.Context, id string, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	v, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkContainer(ctx, in.ContainerID); err != nil {
		return nil, err
	}
	applyVehicle(v, in)
	v.UpdatedAt = time.Now()
	if err := uc.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := dto.NewVehicleResponse(v)
	return &resp, nil
}

// Delete borra el vehículo; sus piezas quedan sin vehículo.
func (uc *VehicleUseCase) Delete(ctx context.Context, id string) error {
	return uc.vehicleRepo.Delete(ctx, id)
}

func (uc *VehicleUseCase) get(ctx context.Context, id string) (*entity.Vehicle, error) {
	v, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("vehículo %s: %w", id, domain.ErrNotFound)
	}
	return v, nil
}

func (uc *VehicleUseCase) checkContainer(ctx context.Context, containerID *string) error {
	if containerID == nil || *containerID == "" {
		return nil
	}
	c, err := uc.containerRepo.GetByID(ctx, *containerID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("contenedor %s: %w", *containerID, domain.ErrNotFound)
	}
	return nil
}

func applyVehicle(v *entity.Vehicle, in dto.VehicleRequest) {
	v.ChassisNumber = strings.TrimSpace(in.ChassisNumber)
	v.Make = strings.TrimSpace(in.Make)
	v.Model = strings.TrimSpace(in.Model)
	v.Year = in.Year
	v.EngineType = in.EngineType
	v.Transmission = in.Transmission
	v.Color = in.Color
	v.Mileage = in.Mileage
	v.PurchasePrice = in.PurchasePrice
	v.PurchaseCurrency = orDefault(in.PurchaseCurrency, entity.CurrencyJPY)
	if d := in.PurchaseDate.TimePtr(); d != nil {
		v.PurchaseDate = *d
	} else if v.PurchaseDate.IsZero() {
		v.PurchaseDate = dto.NewDate(time.Now()).Time
	}
	v.AuctionHouse = in.AuctionHouse
	v.AuctionLotNumber = in.AuctionLotNumber
	v.Status = orDefault(in.Status, entity.VehicleStatusPurchased)
	v.Location = orDefault(in.Location, entity.LocationJapan)
	v.Notes = in.Notes
	v.ContainerID = dto.Trimmed(in.ContainerID)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
