package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// ContainerPL resultado económico de un contenedor.
type ContainerPL struct {
	ContainerID          string          `json:"container_id"`
	ContainerNumber      string          `json:"container_number"`
	Status               string          `json:"status"`
	ArrivalDate          *time.Time      `json:"arrival_date,omitempty"`
	VehicleCount         int             `json:"vehicle_count"`
	SoldParts            int             `json:"sold_parts"`
	UnsoldParts          int             `json:"unsold_parts"`
	ContainerCosts       decimal.Decimal `json:"container_costs"`
	VehicleCosts         decimal.Decimal `json:"vehicle_costs"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	Revenue              decimal.Decimal `json:"revenue"`
	UnsoldInventoryValue decimal.Decimal `json:"unsold_inventory_value"`
	RealizedProfitLoss   decimal.Decimal `json:"realized_profit_loss"`
	ProjectedProfitLoss  decimal.Decimal `json:"projected_profit_loss"`
	MarginPct            decimal.Decimal `json:"margin_pct"`
}

// ComputeContainerPL calcula el P/L de un contenedor a partir de sus vehículos y de
// las piezas obtenidas de esos vehículos.
//
//	totalCost   = costos del contenedor + Σ precio de compra de vehículos
//	revenue     = Σ sellingPrice*quantity de piezas vendidas
//	unsoldValue = Σ costPrice*quantity de piezas en stock
//	realized    = revenue - totalCost
//	projected   = revenue + unsoldValue - totalCost
func ComputeContainerPL(c *entity.Container, vehicles []*entity.Vehicle, parts []*entity.InventoryItem) ContainerPL {
	pl := ContainerPL{
		ContainerID:     c.ID,
		ContainerNumber: c.ContainerNumber,
		Status:          c.Status,
		ArrivalDate:     c.ArrivalDate,
		VehicleCount:    len(vehicles),
		ContainerCosts:  c.CostSum(),
	}
	for _, v := range vehicles {
		pl.VehicleCosts = pl.VehicleCosts.Add(v.PurchasePrice)
	}
	for _, p := range parts {
		qty := decimal.NewFromInt(int64(p.Quantity))
		switch p.Status {
		case entity.InventoryStatusSold:
			pl.SoldParts++
			if p.SellingPrice.Valid {
				pl.Revenue = pl.Revenue.Add(p.SellingPrice.Decimal.Mul(qty))
			}
		case entity.InventoryStatusInStock:
			pl.UnsoldParts++
			pl.UnsoldInventoryValue = pl.UnsoldInventoryValue.Add(p.CostPrice.Mul(qty))
		}
	}
	pl.TotalCost = pl.ContainerCosts.Add(pl.VehicleCosts)
	pl.RealizedProfitLoss = pl.Revenue.Sub(pl.TotalCost)
	pl.ProjectedProfitLoss = pl.Revenue.Add(pl.UnsoldInventoryValue).Sub(pl.TotalCost)
	if pl.TotalCost.IsPositive() {
		pl.MarginPct = pl.RealizedProfitLoss.Div(pl.TotalCost).Mul(hundred).Round(2)
	}
	return pl
}

// ContainerPLSummary totales de un conjunto de contenedores.
type ContainerPLSummary struct {
	TotalContainers     int             `json:"total_containers"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalUnsoldValue    decimal.Decimal `json:"total_unsold_value"`
	RealizedProfitLoss  decimal.Decimal `json:"realized_profit_loss"`
	ProjectedProfitLoss decimal.Decimal `json:"projected_profit_loss"`
}

// ContainerPLReport reporte consolidado de P/L por contenedor.
type ContainerPLReport struct {
	Summary    ContainerPLSummary `json:"summary"`
	Containers []ContainerPL      `json:"containers"`
}

// SummarizeContainerPL consolida una lista de resultados por contenedor.
func SummarizeContainerPL(items []ContainerPL) ContainerPLReport {
	s := ContainerPLSummary{TotalContainers: len(items)}
	for _, pl := range items {
		s.TotalCost = s.TotalCost.Add(pl.TotalCost)
		s.TotalRevenue = s.TotalRevenue.Add(pl.Revenue)
		s.TotalUnsoldValue = s.TotalUnsoldValue.Add(pl.UnsoldInventoryValue)
		s.RealizedProfitLoss = s.RealizedProfitLoss.Add(pl.RealizedProfitLoss)
		s.ProjectedProfitLoss = s.ProjectedProfitLoss.Add(pl.ProjectedProfitLoss)
	}
	if items == nil {
		items = []ContainerPL{}
	}
	return ContainerPLReport{Summary: s, Containers: items}
}
