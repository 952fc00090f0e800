package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// VehicleFilter filtros de listado de vehículos (vacío = sin filtrar).
type VehicleFilter struct {
	Status      string
	Location    string
	ContainerID string
}

// VehicleRepository puerto de persistencia para Vehicle.
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	List(ctx context.Context, f VehicleFilter, p Page) ([]*entity.Vehicle, int, error)
	Search(ctx context.Context, q string, limit int) ([]*entity.Vehicle, error)
	Update(ctx context.Context, v *entity.Vehicle) error
	Delete(ctx context.Context, id string) error
	// AssignContainer asigna los vehículos al contenedor; devuelve cuántos existían.
	AssignContainer(ctx context.Context, containerID string, vehicleIDs []string) (int, error)
}
