package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Estados de pago de una orden.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPartial  = "partial"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Métodos de pago de una orden.
const (
	OrderPaymentCash         = "cash"
	OrderPaymentBankTransfer = "bank_transfer"
	OrderPaymentCreditCard   = "credit_card"
	OrderPaymentCredit       = "credit"
)

// Order venta a un cliente compuesta por una o más líneas de inventario.
type Order struct {
	ID              string
	OrderNumber     string // único, generado
	CustomerID      string
	OrderDate       time.Time
	Status          string
	PaymentStatus   string
	PaymentMethod   string
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	Tax             decimal.Decimal
	ShippingCost    decimal.Decimal
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	Currency        string
	Location        string
	ShippingAddress string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Customer *Customer    // opcional, cargado en el detalle
	Items    []*OrderItem // opcional, cargado en el detalle
}

// Balance saldo pendiente (puede ser negativo si hubo sobrepago).
func (o *Order) Balance() decimal.Decimal {
	return o.TotalAmount.Sub(o.PaidAmount)
}

// OrderItem línea de una orden. Inmutable una vez creada.
type OrderItem struct {
	ID          string
	OrderID     string
	InventoryID string
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time

	Inventory *InventoryItem // opcional, cargado en el detalle
}
