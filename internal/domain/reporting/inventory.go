package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// CategoryValuation valor de inventario de una categoría.
type CategoryValuation struct {
	Items     int             `json:"items"`
	Quantity  int             `json:"quantity"`
	CostValue decimal.Decimal `json:"cost_value"`
	SellValue decimal.Decimal `json:"sell_value"`
}

// InventoryValuation valor del inventario en stock.
type InventoryValuation struct {
	TotalItems      int                           `json:"total_items"`
	TotalQuantity   int                           `json:"total_quantity"`
	TotalCostValue  decimal.Decimal               `json:"total_cost_value"`
	TotalSellValue  decimal.Decimal               `json:"total_sell_value"`
	PotentialProfit decimal.Decimal               `json:"potential_profit"`
	ByCategory      map[string]*CategoryValuation `json:"by_category"`
}

// ValueInventory valora las piezas en stock. El valor de venta usa el precio de
// venta, o el costo cuando la pieza no lo tiene. Las piezas en otro estado se ignoran.
func ValueInventory(items []*entity.InventoryItem) InventoryValuation {
	v := InventoryValuation{ByCategory: map[string]*CategoryValuation{}}
	for _, it := range items {
		if it.Status != entity.InventoryStatusInStock {
			continue
		}
		qty := decimal.NewFromInt(int64(it.Quantity))
		cost := it.CostPrice.Mul(qty)
		sell := it.EffectiveSellingPrice().Mul(qty)

		v.TotalItems++
		v.TotalQuantity += it.Quantity
		v.TotalCostValue = v.TotalCostValue.Add(cost)
		v.TotalSellValue = v.TotalSellValue.Add(sell)

		cat, ok := v.ByCategory[it.Category]
		if !ok {
			cat = &CategoryValuation{}
			v.ByCategory[it.Category] = cat
		}
		cat.Items++
		cat.Quantity += it.Quantity
		cat.CostValue = cat.CostValue.Add(cost)
		cat.SellValue = cat.SellValue.Add(sell)
	}
	v.PotentialProfit = v.TotalSellValue.Sub(v.TotalCostValue)
	return v
}

// InStockCostValue Σ costPrice*quantity de las piezas en stock.
func InStockCostValue(items []*entity.InventoryItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		if it.Status == entity.InventoryStatusInStock {
			sum = sum.Add(it.CostPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	return sum
}
