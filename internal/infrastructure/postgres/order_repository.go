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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, order_number, customer_id, order_date, status, payment_status, payment_method,
	subtotal, discount, tax, shipping_cost, total_amount, paid_amount, currency, location,
	shipping_address, notes, created_at, updated_at`

// La orden siempre se lee junto con su cliente.
var orderSelect = `SELECT ` + prefixed("o", orderColumns) + `, ` + prefixed("c", customerColumns) + `
	FROM orders o JOIN customers c ON c.id = o.customer_id`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var c entity.Customer
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.OrderDate, &o.Status, &o.PaymentStatus,
		&o.PaymentMethod, &o.Subtotal, &o.Discount, &o.Tax, &o.ShippingCost, &o.TotalAmount, &o.PaidAmount,
		&o.Currency, &o.Location, &o.ShippingAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Whatsapp, &c.Company, &c.Type, &c.Country,
		&c.City, &c.Address, &c.TaxID, &c.CreditLimit, &c.CurrentBalance, &c.Currency, &c.IsActive,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Customer = &c
	return &o, nil
}

// Create inserta la cabecera de la orden. Un número repetido se informa como ErrNumberCollision
// para que el caso de uso reintente con otro número.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.OrderNumber, o.CustomerID, o.OrderDate, o.Status, o.PaymentStatus, o.PaymentMethod,
		o.Subtotal, o.Discount, o.Tax, o.ShippingCost, o.TotalAmount, o.PaidAmount, o.Currency, o.Location,
		o.ShippingAddress, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil && isUniqueViolation(err) && constraintName(err) == "orders_order_number_key" {
		return fmt.Errorf("orden %s: %w", o.OrderNumber, domain.ErrNumberCollision)
	}
	return mapWriteError("insert order", err)
}

// CreateItem inserta una línea de la orden.
func (r *OrderRepo) CreateItem(ctx context.Context, it *entity.OrderItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO order_items (id, order_id, inventory_id, quantity, unit_price, discount, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		it.ID, it.OrderID, it.InventoryID, it.Quantity, it.UnitPrice, it.Discount, it.TotalPrice, it.CreatedAt,
	)
	return mapWriteError("insert order item", err)
}

// GetByID obtiene la cabecera con el cliente. Devuelve nil, nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.getOne(ctx, orderSelect+` WHERE o.id = $1`, id)
}

// GetForUpdate igual que GetByID pero bloquea la fila de la orden hasta el fin de la transacción.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.getOne(ctx, orderSelect+` WHERE o.id = $1 FOR UPDATE OF o`, id)
}

func (r *OrderRepo) getOne(ctx context.Context, query, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListItems líneas de la orden con la pieza cargada, en orden de creación.
func (r *OrderRepo) ListItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.inventory_id, oi.quantity, oi.unit_price, oi.discount, oi.total_price,
			oi.created_at, `+prefixed("i", inventoryColumns)+`
		FROM order_items oi JOIN inventory i ON i.id = oi.inventory_id
		WHERE oi.order_id = $1 ORDER BY oi.created_at, oi.id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	items := make([]*entity.OrderItem, 0)
	for rows.Next() {
		var it entity.OrderItem
		var inv entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.InventoryID, &it.Quantity, &it.UnitPrice, &it.Discount,
			&it.TotalPrice, &it.CreatedAt,
			&inv.ID, &inv.SKU, &inv.PartName, &inv.PartNumber, &inv.Category, &inv.Condition, &inv.Quantity,
			&inv.CostPrice, &inv.SellingPrice, &inv.Currency, &inv.Location, &inv.WarehouseLocation,
			&inv.ShelfNumber, &inv.Status, &inv.VehicleID, &inv.CompatibleModels, &inv.Images, &inv.Notes,
			&inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		it.Inventory = &inv
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List lista órdenes con su cliente, más recientes primero.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter, p repository.Page) ([]*entity.Order, int, error) {
	w := &where{}
	w.eq("o.status", f.Status)
	w.eq("o.payment_status", f.PaymentStatus)
	w.eq("o.location", f.Location)
	w.eq("o.customer_id::text", f.CustomerID)
	if f.ExcludeCancelled {
		w.raw("o.status <> 'cancelled'")
	}
	if f.Unpaid {
		w.raw("o.payment_status <> 'paid'")
	}
	w.dates("o.order_date", f.OrderDate)

	var total int
	if err := r.q.QueryRow(ctx, w.countSQL("orders o"), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}
	query := orderSelect + w.sql() + ` ORDER BY o.order_date DESC, o.created_at DESC` + w.limit(p)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, total, rows.Err()
}

// Update persiste los campos mutables de la cabecera (estado, pago, montos, datos de envío).
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE orders SET status = $2, payment_status = $3, payment_method = $4, subtotal = $5, discount = $6,
			tax = $7, shipping_cost = $8, total_amount = $9, paid_amount = $10, location = $11,
			shipping_address = $12, notes = $13, updated_at = $14
		WHERE id = $1`,
		o.ID, o.Status, o.PaymentStatus, o.PaymentMethod, o.Subtotal, o.Discount, o.Tax, o.ShippingCost,
		o.TotalAmount, o.PaidAmount, o.Location, o.ShippingAddress, o.Notes, o.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update order", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la orden; sus líneas caen en cascada.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "orders", id)
}
