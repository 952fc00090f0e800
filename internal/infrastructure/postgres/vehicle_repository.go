package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de VehicleRepository (usable con pool o tx).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, chassis_number, make, model, year, engine_type, transmission, color, mileage,
	purchase_price, purchase_currency, purchase_date, auction_house, auction_lot_number,
	status, location, notes, container_id, created_at, updated_at`

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := row.Scan(&v.ID, &v.ChassisNumber, &v.Make, &v.Model, &v.Year, &v.EngineType, &v.Transmission,
		&v.Color, &v.Mileage, &v.PurchasePrice, &v.PurchaseCurrency, &v.PurchaseDate, &v.AuctionHouse,
		&v.AuctionLotNumber, &v.Status, &v.Location, &v.Notes, &v.ContainerID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectVehicles(rows pgx.Rows) ([]*entity.Vehicle, error) {
	defer rows.Close()
	list := make([]*entity.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Create persiste un vehículo nuevo.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.ChassisNumber, v.Make, v.Model, v.Year, v.EngineType, v.Transmission, v.Color, v.Mileage,
		v.PurchasePrice, v.PurchaseCurrency, v.PurchaseDate, v.AuctionHouse, v.AuctionLotNumber,
		v.Status, v.Location, v.Notes, v.ContainerID, v.CreatedAt, v.UpdatedAt,
	)
	return mapWriteError("insert vehicle", err)
}

// GetByID obtiene un vehículo por ID. Devuelve nil, nil si no existe.
func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

// List lista vehículos filtrados, más recientes primero.
func (r *VehicleRepo) List(ctx context.Context, f repository.VehicleFilter, p repository.Page) ([]*entity.Vehicle, int, error) {
	w := &where{}
	w.eq("status", f.Status)
	w.eq("location", f.Location)
	w.eq("container_id::text", f.ContainerID)

	var total int
	if err := r.q.QueryRow(ctx, w.countSQL("vehicles"), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vehicles: %w", err)
	}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles` + w.sql() + ` ORDER BY created_at DESC` + w.limit(p)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vehicles: %w", err)
	}
	list, err := collectVehicles(rows)
	return list, total, err
}

// Search busca por chasis, marca o modelo.
func (r *VehicleRepo) Search(ctx context.Context, q string, limit int) ([]*entity.Vehicle, error) {
	w := &where{}
	w.like(q, "chassis_number", "make", "model")
	query := `SELECT ` + vehicleColumns + ` FROM vehicles` + w.sql() + ` ORDER BY created_at DESC` +
		w.limit(repository.Page{Limit: limit})
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("search vehicles: %w", err)
	}
	return collectVehicles(rows)
}

// Update reemplaza todos los campos editables del vehículo.
func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	query := `
		UPDATE vehicles SET chassis_number = $2, make = $3, model = $4, year = $5, engine_type = $6,
			transmission = $7, color = $8, mileage = $9, purchase_price = $10, purchase_currency = $11,
			purchase_date = $12, auction_house = $13, auction_lot_number = $14, status = $15,
			location = $16, notes = $17, container_id = $18, updated_at = $19
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		v.ID, v.ChassisNumber, v.Make, v.Model, v.Year, v.EngineType, v.Transmission, v.Color, v.Mileage,
		v.PurchasePrice, v.PurchaseCurrency, v.PurchaseDate, v.AuctionHouse, v.AuctionLotNumber,
		v.Status, v.Location, v.Notes, v.ContainerID, v.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vehículo. Las piezas que lo referencian quedan sin vehículo.
func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "vehicles", id)
}

// AssignContainer vincula los vehículos al contenedor y los marca en tránsito si estaban comprados.
func (r *VehicleRepo) AssignContainer(ctx context.Context, containerID string, vehicleIDs []string) (int, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE vehicles SET container_id = $1,
			status = CASE WHEN status = 'purchased' THEN 'in_transit' ELSE status END,
			updated_at = NOW()
		WHERE id::text = ANY($2)`, containerID, vehicleIDs)
	if err != nil {
		return 0, mapWriteError("assign vehicles", err)
	}
	return int(tag.RowsAffected()), nil
}
