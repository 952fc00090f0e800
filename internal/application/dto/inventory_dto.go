package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemRequest body de POST y PUT /api/inventory.
// SellingPrice es opcional; sin él la valuación usa el costo.
type InventoryItemRequest struct {
	SKU               string              `json:"sku" validate:"required,max=100"`
	PartName          string              `json:"part_name" validate:"required,max=200"`
	PartNumber        string              `json:"part_number" validate:"max=100"`
	Category          string              `json:"category" validate:"required,oneof=engine transmission body interior electrical suspension brakes other"`
	Condition         string              `json:"condition" validate:"omitempty,oneof=new excellent good fair poor"`
	Quantity          *int                `json:"quantity" validate:"omitempty,min=0"`
	CostPrice         decimal.Decimal     `json:"cost_price" validate:"gte=0"`
	SellingPrice      decimal.NullDecimal `json:"selling_price" validate:"omitempty,gte=0"`
	Currency          string              `json:"currency" validate:"omitempty,oneof=JPY AED USD"`
	Location          string              `json:"location" validate:"omitempty,oneof=japan dubai"`
	WarehouseLocation string              `json:"warehouse_location" validate:"max=100"`
	ShelfNumber       string              `json:"shelf_number" validate:"max=50"`
	Status            string              `json:"status" validate:"omitempty,oneof=in_stock reserved sold damaged"`
	VehicleID         *string             `json:"vehicle_id" validate:"omitempty,uuid"`
	CompatibleModels  []string            `json:"compatible_models"`
	Images            []string            `json:"images"`
	Notes             string              `json:"notes"`
}

// InventoryFilter query de GET /api/inventory.
type InventoryFilter struct {
	PageRequest
	Category  string `query:"category"`
	Status    string `query:"status"`
	Location  string `query:"location"`
	VehicleID string `query:"vehicle_id"`
}

// InventoryItemResponse pieza en respuestas.
type InventoryItemResponse struct {
	ID                string              `json:"id"`
	SKU               string              `json:"sku"`
	PartName          string              `json:"part_name"`
	PartNumber        string              `json:"part_number"`
	Category          string              `json:"category"`
	Condition         string              `json:"condition"`
	Quantity          int                 `json:"quantity"`
	CostPrice         decimal.Decimal     `json:"cost_price"`
	SellingPrice      decimal.NullDecimal `json:"selling_price"`
	Currency          string              `json:"currency"`
	Location          string              `json:"location"`
	WarehouseLocation string              `json:"warehouse_location"`
	ShelfNumber       string              `json:"shelf_number"`
	Status            string              `json:"status"`
	VehicleID         *string             `json:"vehicle_id"`
	CompatibleModels  []string            `json:"compatible_models"`
	Images            []string            `json:"images"`
	Notes             string              `json:"notes"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Vehicle           *VehicleResponse    `json:"vehicle,omitempty"`
}

// LowStockResponse piezas con stock bajo y el umbral usado.
type LowStockResponse struct {
	Threshold int                     `json:"threshold"`
	Count     int                     `json:"count"`
	Items     []InventoryItemResponse `json:"items"`
}
