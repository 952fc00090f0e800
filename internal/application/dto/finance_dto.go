package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Inmuebles ──

// PropertyRequest body de POST y PUT /api/properties.
type PropertyRequest struct {
	Name            string              `json:"name" validate:"required,max=200"`
	Type            string              `json:"type" validate:"required,oneof=warehouse office showroom residential land"`
	Address         string              `json:"address"`
	City            string              `json:"city" validate:"max=100"`
	Country         string              `json:"country" validate:"max=100"`
	Location        string              `json:"location" validate:"required,oneof=japan dubai"`
	Size            decimal.NullDecimal `json:"size" validate:"omitempty,gte=0"`
	SizeUnit        string              `json:"size_unit" validate:"omitempty,oneof=sqft sqm"`
	Ownership       string              `json:"ownership" validate:"required,oneof=owned rented leased"`
	PurchasePrice   decimal.NullDecimal `json:"purchase_price" validate:"omitempty,gte=0"`
	CurrentValue    decimal.NullDecimal `json:"current_value" validate:"omitempty,gte=0"`
	MonthlyRent     decimal.Decimal     `json:"monthly_rent" validate:"gte=0"`
	MonthlyExpenses decimal.Decimal     `json:"monthly_expenses" validate:"gte=0"`
	Currency        string              `json:"currency" validate:"omitempty,oneof=JPY AED USD"`
	LeaseStartDate  *Date               `json:"lease_start_date"`
	LeaseEndDate    *Date               `json:"lease_end_date"`
	Status          string              `json:"status" validate:"omitempty,oneof=active vacant under_maintenance sold"`
	Notes           string              `json:"notes"`
}

// PropertyFilter query de GET /api/properties.
type PropertyFilter struct {
	PageRequest
	Type      string `query:"type"`
	Location  string `query:"location"`
	Ownership string `query:"ownership"`
	Status    string `query:"status"`
}

// PropertyResponse inmueble en respuestas.
type PropertyResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Type            string                `json:"type"`
	Address         string                `json:"address"`
	City            string                `json:"city"`
	Country         string                `json:"country"`
	Location        string                `json:"location"`
	Size            decimal.NullDecimal   `json:"size"`
	SizeUnit        string                `json:"size_unit"`
	Ownership       string                `json:"ownership"`
	PurchasePrice   decimal.NullDecimal   `json:"purchase_price"`
	CurrentValue    decimal.NullDecimal   `json:"current_value"`
	MonthlyRent     decimal.Decimal       `json:"monthly_rent"`
	MonthlyExpenses decimal.Decimal       `json:"monthly_expenses"`
	Currency        string                `json:"currency"`
	LeaseStartDate  *Date                 `json:"lease_start_date"`
	LeaseEndDate    *Date                 `json:"lease_end_date"`
	Status          string                `json:"status"`
	Notes           string                `json:"notes"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	Transactions    []TransactionResponse `json:"transactions,omitempty"`
}

// ── Transacciones ──

// TransactionRequest body de POST y PUT /api/transactions.
// ExchangeRate convierte a USD (1 por defecto); amount_usd se calcula.
type TransactionRequest struct {
	Type          string              `json:"type" validate:"required,oneof=income expense transfer"`
	Category      string              `json:"category" validate:"required,oneof=sales purchase shipping customs salary rent utilities maintenance insurance tax other"`
	Amount        decimal.Decimal     `json:"amount" validate:"gt=0"`
	Currency      string              `json:"currency" validate:"omitempty,oneof=JPY AED USD"`
	ExchangeRate  decimal.NullDecimal `json:"exchange_rate" validate:"omitempty,gt=0"`
	Date          *Date               `json:"date"`
	PaymentMethod string              `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer credit_card check"`
	Account       string              `json:"account" validate:"omitempty,oneof=cash_japan cash_dubai bank_japan bank_dubai"`
	Reference     string              `json:"reference" validate:"max=100"`
	Description   string              `json:"description"`
	PropertyID    *string             `json:"property_id" validate:"omitempty,uuid"`
	OrderID       *string             `json:"order_id" validate:"omitempty,uuid"`
	ContainerID   *string             `json:"container_id" validate:"omitempty,uuid"`
	Location      string              `json:"location" validate:"required,oneof=japan dubai"`
	Status        string              `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Notes         string              `json:"notes"`
}

// TransactionFilter query de GET /api/transactions.
type TransactionFilter struct {
	PageRequest
	Type      string `query:"type"`
	Category  string `query:"category"`
	Location  string `query:"location"`
	Status    string `query:"status"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// TransactionResponse transacción en respuestas.
type TransactionResponse struct {
	ID                string          `json:"id"`
	TransactionNumber string          `json:"transaction_number"`
	Type              string          `json:"type"`
	Category          string          `json:"category"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate"`
	AmountUSD         decimal.Decimal `json:"amount_usd"`
	Date              Date            `json:"date"`
	PaymentMethod     string          `json:"payment_method"`
	Account           string          `json:"account"`
	Reference         string          `json:"reference"`
	Description       string          `json:"description"`
	PropertyID        *string         `json:"property_id"`
	OrderID           *string         `json:"order_id"`
	ContainerID       *string         `json:"container_id"`
	Location          string          `json:"location"`
	Status            string          `json:"status"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
