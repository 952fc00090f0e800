package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cliente.
const (
	CustomerTypeRetail    = "retail"
	CustomerTypeWholesale = "wholesale"
	CustomerTypeGarage    = "garage"
	CustomerTypeDealer    = "dealer"
)

// Customer cliente que compra piezas.
type Customer struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Whatsapp       string
	Company        string
	Type           string
	Country        string
	City           string
	Address        string
	TaxID          string
	CreditLimit    decimal.Decimal
	CurrentBalance decimal.Decimal // editable a mano; el saldo real se calcula desde las órdenes
	Currency       string
	IsActive       bool
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
