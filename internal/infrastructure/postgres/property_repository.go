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

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implementación de PropertyRepository.
type PropertyRepo struct {
	q Querier
}

// NewPropertyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

const propertyColumns = `id, name, type, address, city, country, location, size, size_unit, ownership,
	purchase_price, current_value, monthly_rent, monthly_expenses, currency, lease_start_date,
	lease_end_date, status, notes, created_at, updated_at`

func scanProperty(row pgx.Row) (*entity.Property, error) {
	var p entity.Property
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Address, &p.City, &p.Country, &p.Location, &p.Size, &p.SizeUnit,
		&p.Ownership, &p.PurchasePrice, &p.CurrentValue, &p.MonthlyRent, &p.MonthlyExpenses, &p.Currency,
		&p.LeaseStartDate, &p.LeaseEndDate, &p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un inmueble.
func (r *PropertyRepo) Create(ctx context.Context, p *entity.Property) error {
	query := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Type, p.Address, p.City, p.Country, p.Location, p.Size, p.SizeUnit, p.Ownership,
		p.PurchasePrice, p.CurrentValue, p.MonthlyRent, p.MonthlyExpenses, p.Currency, p.LeaseStartDate,
		p.LeaseEndDate, p.Status, p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	return mapWriteError("insert property", err)
}

// GetByID obtiene un inmueble. Devuelve nil, nil si no existe.
func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	p, err := scanProperty(r.q.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// List lista inmuebles por nombre.
func (r *PropertyRepo) List(ctx context.Context, f repository.PropertyFilter, pg repository.Page) ([]*entity.Property, int, error) {
	w := &where{}
	w.eq("type", f.Type)
	w.eq("location", f.Location)
	w.eq("ownership", f.Ownership)
	w.eq("status", f.Status)

	var total int
	if err := r.q.QueryRow(ctx, w.countSQL("properties"), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+propertyColumns+` FROM properties`+w.sql()+` ORDER BY name`+w.limit(pg), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan property: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update reemplaza los campos editables.
func (r *PropertyRepo) Update(ctx context.Context, p *entity.Property) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE properties SET name = $2, type = $3, address = $4, city = $5, country = $6, location = $7,
			size = $8, size_unit = $9, ownership = $10, purchase_price = $11, current_value = $12,
			monthly_rent = $13, monthly_expenses = $14, currency = $15, lease_start_date = $16,
			lease_end_date = $17, status = $18, notes = $19, updated_at = $20
		WHERE id = $1`,
		p.ID, p.Name, p.Type, p.Address, p.City, p.Country, p.Location, p.Size, p.SizeUnit, p.Ownership,
		p.PurchasePrice, p.CurrentValue, p.MonthlyRent, p.MonthlyExpenses, p.Currency, p.LeaseStartDate,
		p.LeaseEndDate, p.Status, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update property", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el inmueble; sus transacciones quedan sin inmueble.
func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "properties", id)
}
