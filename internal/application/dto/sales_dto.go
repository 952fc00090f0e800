package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Clientes ──

// CustomerRequest body de POST y PUT /api/customers.
type CustomerRequest struct {
	Name           string          `json:"name" validate:"required,max=200"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone" validate:"max=50"`
	Whatsapp       string          `json:"whatsapp" validate:"max=50"`
	Company        string          `json:"company" validate:"max=200"`
	Type           string          `json:"type" validate:"omitempty,oneof=retail wholesale garage dealer"`
	Country        string          `json:"country" validate:"max=100"`
	City           string          `json:"city" validate:"max=100"`
	Address        string          `json:"address"`
	TaxID          string          `json:"tax_id" validate:"max=50"`
	CreditLimit    decimal.Decimal `json:"credit_limit" validate:"gte=0"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency" validate:"omitempty,oneof=JPY AED USD"`
	IsActive       *bool           `json:"is_active"`
	Notes          string          `json:"notes"`
}

// CustomerFilter query de GET /api/customers.
type CustomerFilter struct {
	PageRequest
	Type     string `query:"type"`
	IsActive string `query:"is_active"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Whatsapp       string          `json:"whatsapp"`
	Company        string          `json:"company"`
	Type           string          `json:"type"`
	Country        string          `json:"country"`
	City           string          `json:"city"`
	Address        string          `json:"address"`
	TaxID          string          `json:"tax_id"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	IsActive       bool            `json:"is_active"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Orders         []OrderResponse `json:"orders,omitempty"`
}

// ── Órdenes ──

// CreateOrderRequest body de POST /api/orders.
type CreateOrderRequest struct {
	CustomerID      string             `json:"customer_id" validate:"required,uuid"`
	Location        string             `json:"location" validate:"required,oneof=japan dubai"`
	PaymentMethod   string             `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer credit_card credit"`
	Currency        string             `json:"currency" validate:"omitempty,oneof=JPY AED USD"`
	Discount        decimal.Decimal    `json:"discount" validate:"gte=0"`
	Tax             decimal.Decimal    `json:"tax" validate:"gte=0"`
	ShippingCost    decimal.Decimal    `json:"shipping_cost" validate:"gte=0"`
	ShippingAddress string             `json:"shipping_address"`
	Notes           string             `json:"notes"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemRequest línea del carrito. Sin unit_price se usa el precio de venta de la pieza.
type OrderItemRequest struct {
	InventoryID string              `json:"inventory_id" validate:"required,uuid"`
	Quantity    int                 `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.NullDecimal `json:"unit_price" validate:"omitempty,gte=0"`
	Discount    decimal.Decimal     `json:"discount" validate:"gte=0"`
}

// UpdateOrderRequest body de PUT /api/orders/:id. Las líneas no se modifican.
type UpdateOrderRequest struct {
	Location        string          `json:"location" validate:"required,oneof=japan dubai"`
	PaymentMethod   string          `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer credit_card credit"`
	Discount        decimal.Decimal `json:"discount" validate:"gte=0"`
	Tax             decimal.Decimal `json:"tax" validate:"gte=0"`
	ShippingCost    decimal.Decimal `json:"shipping_cost" validate:"gte=0"`
	ShippingAddress string          `json:"shipping_address"`
	Notes           string          `json:"notes"`
}

// UpdateOrderStatusRequest body de PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}

// RecordPaymentRequest body de POST /api/orders/:id/payment.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer credit_card credit"`
	Account       string          `json:"account" validate:"omitempty,oneof=cash_japan cash_dubai bank_japan bank_dubai"`
	Reference     string          `json:"reference" validate:"max=100"`
}

// OrderFilter query de GET /api/orders.
type OrderFilter struct {
	PageRequest
	Status        string `query:"status"`
	PaymentStatus string `query:"payment_status"`
	Location      string `query:"location"`
	CustomerID    string `query:"customer_id"`
}

// OrderItemResponse línea en respuestas.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	InventoryID string          `json:"inventory_id"`
	SKU         string          `json:"sku,omitempty"`
	PartName    string          `json:"part_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderResponse orden en respuestas.
type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	CustomerID      string              `json:"customer_id"`
	CustomerName    string              `json:"customer_name,omitempty"`
	OrderDate       time.Time           `json:"order_date"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	PaymentMethod   string              `json:"payment_method"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Discount        decimal.Decimal     `json:"discount"`
	Tax             decimal.Decimal     `json:"tax"`
	ShippingCost    decimal.Decimal     `json:"shipping_cost"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaidAmount      decimal.Decimal     `json:"paid_amount"`
	Balance         decimal.Decimal     `json:"balance"`
	Currency        string              `json:"currency"`
	Location        string              `json:"location"`
	ShippingAddress string              `json:"shipping_address"`
	Notes           string              `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Customer        *CustomerResponse   `json:"customer,omitempty"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// PaymentResponse resultado de registrar un pago.
type PaymentResponse struct {
	Order       OrderResponse       `json:"order"`
	Transaction TransactionResponse `json:"transaction"`
	Balance     decimal.Decimal     `json:"balance"`
}
