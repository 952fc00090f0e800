package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/autoparts-api/internal/application/sales"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSales inicia una transacción, entrega a fn los repositorios de ventas atados a ella
// y hace Commit si fn devuelve nil; en cualquier otro caso Rollback.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	inventoryRepo repository.InventoryRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewInventoryRepository(tx),
		NewOrderRepository(tx),
		NewCustomerRepository(tx),
		NewTransactionRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
