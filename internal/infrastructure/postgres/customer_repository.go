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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, email, phone, whatsapp, company, type, country, city, address, tax_id,
	credit_limit, current_balance, currency, is_active, notes, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Whatsapp, &c.Company, &c.Type, &c.Country,
		&c.City, &c.Address, &c.TaxID, &c.CreditLimit, &c.CurrentBalance, &c.Currency, &c.IsActive,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Whatsapp, c.Company, c.Type, c.Country, c.City, c.Address, c.TaxID,
		c.CreditLimit, c.CurrentBalance, c.Currency, c.IsActive, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	return mapWriteError("insert customer", err)
}

// GetByID obtiene un cliente por ID. Devuelve nil, nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List lista clientes por nombre con paginación.
func (r *CustomerRepo) List(ctx context.Context, f repository.CustomerFilter, p repository.Page) ([]*entity.Customer, int, error) {
	w := &where{}
	w.eq("type", f.Type)
	if f.IsActive != nil {
		w.add("is_active = ?", *f.IsActive)
	}

	var total int
	if err := r.q.QueryRow(ctx, w.countSQL("customers"), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}
	query := `SELECT ` + customerColumns + ` FROM customers` + w.sql() + ` ORDER BY name` + w.limit(p)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	list, err := collectCustomers(rows)
	return list, total, err
}

// Search busca por nombre, email, teléfono o empresa.
func (r *CustomerRepo) Search(ctx context.Context, q string, limit int) ([]*entity.Customer, error) {
	w := &where{}
	w.like(q, "name", "email", "phone", "company")
	query := `SELECT ` + customerColumns + ` FROM customers` + w.sql() + ` ORDER BY name` +
		w.limit(repository.Page{Limit: limit})
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return collectCustomers(rows)
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, whatsapp = $5, company = $6, type = $7,
			country = $8, city = $9, address = $10, tax_id = $11, credit_limit = $12, current_balance = $13,
			currency = $14, is_active = $15, notes = $16, updated_at = $17
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Whatsapp, c.Company, c.Type, c.Country, c.City, c.Address, c.TaxID,
		c.CreditLimit, c.CurrentBalance, c.Currency, c.IsActive, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente. Falla con ErrConflict si tiene órdenes.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "customers", id)
}
