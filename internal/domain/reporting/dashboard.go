package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// EntityCounts conteos por tabla para el tablero.
type EntityCounts struct {
	Vehicles       int64 `json:"vehicles"`
	Containers     int64 `json:"containers"`
	InventoryItems int64 `json:"inventory_items"`
	Customers      int64 `json:"customers"`
	Employees      int64 `json:"employees"`
	Properties     int64 `json:"properties"`
}

// Dashboard indicadores del tablero principal.
type Dashboard struct {
	EntityCounts
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	MonthlyOrders  int             `json:"monthly_orders"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	Currency       string          `json:"currency"`
}

// BuildDashboard combina conteos, órdenes del mes y piezas en stock.
func BuildDashboard(counts EntityCounts, monthOrders []*entity.Order, inStock []*entity.InventoryItem, currency string) Dashboard {
	return Dashboard{
		EntityCounts:   counts,
		MonthlyRevenue: Revenue(monthOrders),
		MonthlyOrders:  len(monthOrders),
		InventoryValue: InStockCostValue(inStock),
		Currency:       currency,
	}
}
