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

var _ repository.ContainerRepository = (*ContainerRepo)(nil)

// ContainerRepo implementación de ContainerRepository.
type ContainerRepo struct {
	q Querier
}

// NewContainerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContainerRepository(q Querier) *ContainerRepo {
	return &ContainerRepo{q: q}
}

const containerColumns = `id, container_number, booking_number, shipping_line, size, origin, destination,
	departure_date, arrival_date, actual_arrival_date, status, shipping_cost, insurance_cost,
	customs_duty, clearance_fees, transport_cost, total_cost, currency, notes, created_at, updated_at`

func scanContainer(row pgx.Row) (*entity.Container, error) {
	var c entity.Container
	err := row.Scan(&c.ID, &c.ContainerNumber, &c.BookingNumber, &c.ShippingLine, &c.Size, &c.Origin,
		&c.Destination, &c.DepartureDate, &c.ArrivalDate, &c.ActualArrivalDate, &c.Status, &c.ShippingCost,
		&c.InsuranceCost, &c.CustomsDuty, &c.ClearanceFees, &c.TransportCost, &c.TotalCost, &c.Currency,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un contenedor; total_cost se guarda igual a la suma de costos.
func (r *ContainerRepo) Create(ctx context.Context, c *entity.Container) error {
	c.TotalCost = c.CostSum()
	query := `
		INSERT INTO containers (` + containerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.ContainerNumber, c.BookingNumber, c.ShippingLine, c.Size, c.Origin, c.Destination,
		c.DepartureDate, c.ArrivalDate, c.ActualArrivalDate, c.Status, c.ShippingCost, c.InsuranceCost,
		c.CustomsDuty, c.ClearanceFees, c.TransportCost, c.TotalCost, c.Currency, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	return mapWriteError("insert container", err)
}

// GetByID obtiene un contenedor por ID. Devuelve nil, nil si no existe.
func (r *ContainerRepo) GetByID(ctx context.Context, id string) (*entity.Container, error) {
	c, err := scanContainer(r.q.QueryRow(ctx, `SELECT `+containerColumns+` FROM containers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get container: %w", err)
	}
	return c, nil
}

// List lista contenedores, más recientes primero.
func (r *ContainerRepo) List(ctx context.Context, f repository.ContainerFilter, p repository.Page) ([]*entity.Container, int, error) {
	w := &where{}
	w.eq("status", f.Status)
	w.dates("arrival_date", f.Arrival)

	var total int
	if err := r.q.QueryRow(ctx, w.countSQL("containers"), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count containers: %w", err)
	}
	query := `SELECT ` + containerColumns + ` FROM containers` + w.sql() + ` ORDER BY created_at DESC` + w.limit(p)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list containers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Container, 0)
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan container: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Update reemplaza los campos editables y recalcula total_cost.
func (r *ContainerRepo) Update(ctx context.Context, c *entity.Container) error {
	c.TotalCost = c.CostSum()
	query := `
		UPDATE containers SET container_number = $2, booking_number = $3, shipping_line = $4, size = $5,
			origin = $6, destination = $7, departure_date = $8, arrival_date = $9, actual_arrival_date = $10,
			status = $11, shipping_cost = $12, insurance_cost = $13, customs_duty = $14, clearance_fees = $15,
			transport_cost = $16, total_cost = $17, currency = $18, notes = $19, updated_at = $20
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.ContainerNumber, c.BookingNumber, c.ShippingLine, c.Size, c.Origin, c.Destination,
		c.DepartureDate, c.ArrivalDate, c.ActualArrivalDate, c.Status, c.ShippingCost, c.InsuranceCost,
		c.CustomsDuty, c.ClearanceFees, c.TransportCost, c.TotalCost, c.Currency, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update container", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el contenedor; sus vehículos quedan sin contenedor.
func (r *ContainerRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "containers", id)
}
