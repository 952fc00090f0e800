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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, transaction_number, type, category, amount, currency, exchange_rate, amount_usd,
	date, payment_method, account, reference, description, property_id, order_id, container_id,
	location, status, notes, created_at, updated_at`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(&t.ID, &t.TransactionNumber, &t.Type, &t.Category, &t.Amount, &t.Currency, &t.ExchangeRate,
		&t.AmountUSD, &t.Date, &t.PaymentMethod, &t.Account, &t.Reference, &t.Description, &t.PropertyID,
		&t.OrderID, &t.ContainerID, &t.Location, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una transacción. Un número repetido se informa como ErrNumberCollision.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.TransactionNumber, t.Type, t.Category, t.Amount, t.Currency, t.ExchangeRate, t.AmountUSD,
		t.Date, t.PaymentMethod, t.Account, t.Reference, t.Description, t.PropertyID, t.OrderID, t.ContainerID,
		t.Location, t.Status, t.Notes, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil && isUniqueViolation(err) && constraintName(err) == "transactions_transaction_number_key" {
		return fmt.Errorf("transacción %s: %w", t.TransactionNumber, domain.ErrNumberCollision)
	}
	return mapWriteError("insert transaction", err)
}

// GetByID obtiene una transacción. Devuelve nil, nil si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// List lista transacciones por fecha descendente.
func (r *TransactionRepo) List(ctx context.Context, f repository.TransactionFilter, p repository.Page) ([]*entity.Transaction, int, error) {
	w := &where{}
	w.eq("type", f.Type)
	w.eq("category", f.Category)
	w.eq("location", f.Location)
	w.eq("status", f.Status)
	w.eq("property_id::text", f.PropertyID)
	w.eq("order_id::text", f.OrderID)
	if f.HasProperty {
		w.raw("property_id IS NOT NULL")
	}
	w.dates("date", f.Date)

	var total int
	if err := r.q.QueryRow(ctx, w.countSQL("transactions"), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions` + w.sql() +
		` ORDER BY date DESC, created_at DESC` + w.limit(p)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, total, rows.Err()
}

// Update reemplaza los campos editables; el número no cambia.
func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE transactions SET type = $2, category = $3, amount = $4, currency = $5, exchange_rate = $6,
			amount_usd = $7, date = $8, payment_method = $9, account = $10, reference = $11, description = $12,
			property_id = $13, order_id = $14, container_id = $15, location = $16, status = $17, notes = $18,
			updated_at = $19
		WHERE id = $1`,
		t.ID, t.Type, t.Category, t.Amount, t.Currency, t.ExchangeRate, t.AmountUSD, t.Date, t.PaymentMethod,
		t.Account, t.Reference, t.Description, t.PropertyID, t.OrderID, t.ContainerID, t.Location, t.Status,
		t.Notes, t.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una transacción.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "transactions", id)
}
