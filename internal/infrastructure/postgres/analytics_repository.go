package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el tablero.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountEntities cuenta filas de cada tabla en una sola consulta.
// Contenedores y clientes no tienen región, así que location no los filtra.
func (r *AnalyticsRepo) CountEntities(ctx context.Context, location string) (reporting.EntityCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM vehicles   WHERE $1 = '' OR location = $1) AS vehicles,
	    (SELECT COUNT(*) FROM containers)                                AS containers,
	    (SELECT COUNT(*) FROM inventory  WHERE $1 = '' OR location = $1) AS inventory_items,
	    (SELECT COUNT(*) FROM customers)                                 AS customers,
	    (SELECT COUNT(*) FROM employees  WHERE $1 = '' OR location = $1) AS employees,
	    (SELECT COUNT(*) FROM properties WHERE $1 = '' OR location = $1) AS properties`

	var c reporting.EntityCounts
	if err := r.q.QueryRow(ctx, query, location).Scan(
		&c.Vehicles, &c.Containers, &c.InventoryItems, &c.Customers, &c.Employees, &c.Properties,
	); err != nil {
		return reporting.EntityCounts{}, fmt.Errorf("count entities: %w", err)
	}
	return c, nil
}
