package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una pieza en inventario.
const (
	InventoryStatusInStock  = "in_stock"
	InventoryStatusReserved = "reserved"
	InventoryStatusSold     = "sold"
	InventoryStatusDamaged  = "damaged"
)

// Categorías de pieza.
const (
	CategoryEngine       = "engine"
	CategoryTransmission = "transmission"
	CategoryBody         = "body"
	CategoryInterior     = "interior"
	CategoryElectrical   = "electrical"
	CategorySuspension   = "suspension"
	CategoryBrakes       = "brakes"
	CategoryOther        = "other"
)

// Condiciones de pieza.
const (
	ConditionNew       = "new"
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
)

// InventoryItem pieza (SKU) obtenida al desmontar un vehículo o comprada directamente.
// Quantity nunca es negativa.
type InventoryItem struct {
	ID                string
	SKU               string // único
	PartName          string
	PartNumber        string
	Category          string
	Condition         string
	Quantity          int
	CostPrice         decimal.Decimal
	SellingPrice      decimal.NullDecimal
	Currency          string
	Location          string
	WarehouseLocation string
	ShelfNumber       string
	Status            string
	VehicleID         *string
	CompatibleModels  []string
	Images            []string // solo referencias; no se gestionan archivos
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EffectiveSellingPrice precio de venta, o el costo si no tiene precio de venta.
func (i *InventoryItem) EffectiveSellingPrice() decimal.Decimal {
	if i.SellingPrice.Valid {
		return i.SellingPrice.Decimal
	}
	return i.CostPrice
}
