package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de inmueble.
const (
	PropertyTypeWarehouse   = "warehouse"
	PropertyTypeOffice      = "office"
	PropertyTypeShowroom    = "showroom"
	PropertyTypeResidential = "residential"
	PropertyTypeLand        = "land"
)

// Tenencia de un inmueble.
const (
	OwnershipOwned  = "owned"
	OwnershipRented = "rented"
	OwnershipLeased = "leased"
)

// Estados de un inmueble.
const (
	PropertyStatusActive           = "active"
	PropertyStatusVacant           = "vacant"
	PropertyStatusUnderMaintenance = "under_maintenance"
	PropertyStatusSold             = "sold"
)

// Property inmueble propio o arrendado. Sus ingresos y gastos son transacciones vinculadas.
type Property struct {
	ID              string
	Name            string
	Type            string
	Address         string
	City            string
	Country         string
	Location        string
	Size            decimal.NullDecimal
	SizeUnit        string // sqft | sqm
	Ownership       string
	PurchasePrice   decimal.NullDecimal
	CurrentValue    decimal.NullDecimal
	MonthlyRent     decimal.Decimal
	MonthlyExpenses decimal.Decimal
	Currency        string
	LeaseStartDate  *time.Time
	LeaseEndDate    *time.Time
	Status          string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
