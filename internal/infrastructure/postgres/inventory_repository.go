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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, sku, part_name, part_number, category, condition, quantity, cost_price,
	selling_price, currency, location, warehouse_location, shelf_number, status, vehicle_id,
	compatible_models, images, notes, created_at, updated_at`

func scanInventory(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.SKU, &it.PartName, &it.PartNumber, &it.Category, &it.Condition, &it.Quantity,
		&it.CostPrice, &it.SellingPrice, &it.Currency, &it.Location, &it.WarehouseLocation, &it.ShelfNumber,
		&it.Status, &it.VehicleID, &it.CompatibleModels, &it.Images, &it.Notes, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func collectInventory(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	defer rows.Close()
	list := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		it, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Create persiste una pieza nueva.
func (r *InventoryRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.SKU, it.PartName, it.PartNumber, it.Category, it.Condition, it.Quantity, it.CostPrice,
		it.SellingPrice, it.Currency, it.Location, it.WarehouseLocation, it.ShelfNumber, it.Status, it.VehicleID,
		textArray(it.CompatibleModels), textArray(it.Images), it.Notes, it.CreatedAt, it.UpdatedAt,
	)
	return mapWriteError("insert inventory", err)
}

// GetByID obtiene una pieza por ID. Devuelve nil, nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	it, err := scanInventory(r.q.QueryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return it, nil
}

// List lista piezas filtradas, más recientes primero.
func (r *InventoryRepo) List(ctx context.Context, f repository.InventoryFilter, p repository.Page) ([]*entity.InventoryItem, int, error) {
	w := &where{}
	w.eq("category", f.Category)
	w.eq("status", f.Status)
	w.eq("location", f.Location)
	w.eq("vehicle_id::text", f.VehicleID)

	var total int
	if err := r.q.QueryRow(ctx, w.countSQL("inventory"), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}
	query := `SELECT ` + inventoryColumns + ` FROM inventory` + w.sql() + ` ORDER BY created_at DESC` + w.limit(p)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory: %w", err)
	}
	list, err := collectInventory(rows)
	return list, total, err
}

// Search busca por SKU, nombre o número de parte.
func (r *InventoryRepo) Search(ctx context.Context, q string, limit int) ([]*entity.InventoryItem, error) {
	w := &where{}
	w.like(q, "sku", "part_name", "part_number")
	query := `SELECT ` + inventoryColumns + ` FROM inventory` + w.sql() + ` ORDER BY part_name` +
		w.limit(repository.Page{Limit: limit})
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("search inventory: %w", err)
	}
	return collectInventory(rows)
}

// Update reemplaza los campos editables de la pieza.
func (r *InventoryRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory SET sku = $2, part_name = $3, part_number = $4, category = $5, condition = $6,
			quantity = $7, cost_price = $8, selling_price = $9, currency = $10, location = $11,
			warehouse_location = $12, shelf_number = $13, status = $14, vehicle_id = $15,
			compatible_models = $16, images = $17, notes = $18, updated_at = $19
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		it.ID, it.SKU, it.PartName, it.PartNumber, it.Category, it.Condition, it.Quantity, it.CostPrice,
		it.SellingPrice, it.Currency, it.Location, it.WarehouseLocation, it.ShelfNumber, it.Status, it.VehicleID,
		textArray(it.CompatibleModels), textArray(it.Images), it.Notes, it.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una pieza. Falla con ErrConflict si alguna orden la referencia.
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "inventory", id)
}

// ListInStock piezas en stock, opcionalmente de una región.
func (r *InventoryRepo) ListInStock(ctx context.Context, location string) ([]*entity.InventoryItem, error) {
	w := &where{}
	w.eq("status", entity.InventoryStatusInStock)
	w.eq("location", location)
	rows, err := r.q.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory`+w.sql()+` ORDER BY category, part_name`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list in-stock inventory: %w", err)
	}
	return collectInventory(rows)
}

// ListLowStock piezas en stock con quantity <= threshold, ascendente por cantidad.
func (r *InventoryRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory
		WHERE status = 'in_stock' AND quantity <= $1 ORDER BY quantity ASC, part_name`, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return collectInventory(rows)
}

// ListByContainer piezas cuyo vehículo de origen pertenece al contenedor.
func (r *InventoryRepo) ListByContainer(ctx context.Context, containerID string) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+prefixed("i", inventoryColumns)+`
		FROM inventory i JOIN vehicles v ON v.id = i.vehicle_id
		WHERE v.container_id = $1 ORDER BY i.created_at`, containerID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by container: %w", err)
	}
	return collectInventory(rows)
}

// Reserve descuenta stock con un UPDATE condicional: la fila solo cambia si alcanza la cantidad,
// así dos reservas concurrentes no pueden dejar quantity negativa. Al llegar a 0 pasa a sold.
func (r *InventoryRepo) Reserve(ctx context.Context, id string, quantity int) (*entity.InventoryItem, error) {
	it, err := scanInventory(r.q.QueryRow(ctx, `
		UPDATE inventory SET quantity = quantity - $2,
			status = CASE WHEN quantity - $2 = 0 THEN 'sold' ELSE status END,
			updated_at = NOW()
		WHERE id = $1 AND quantity >= $2
		RETURNING `+inventoryColumns, id, quantity))
	if err == nil {
		return it, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("reserve inventory: %w", err)
	}
	var available int
	if err := r.q.QueryRow(ctx, `SELECT quantity FROM inventory WHERE id = $1`, id).Scan(&available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("pieza %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reserve inventory: %w", err)
	}
	return nil, fmt.Errorf("pieza %s: solicitado %d, disponible %d: %w", id, quantity, available, domain.ErrInsufficientStock)
}
