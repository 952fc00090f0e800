package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

func TestAmount_MilesYDosDecimales(t *testing.T) {
	r := NewOrderRenderer("")
	assert.Equal(t, "1,234.50", r.amount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0.00", r.amount(decimal.Zero))
	assert.Equal(t, "AED 1,000,000.00", r.money(decimal.NewFromInt(1000000), entity.CurrencyAED))
	assert.Equal(t, "12.35", r.money(decimal.RequireFromString("12.345"), ""))
}

func TestRenderOrder_GeneraPDF(t *testing.T) {
	o := &entity.Order{
		ID:            "o1",
		OrderNumber:   "ORD-260307-0001",
		OrderDate:     time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPartial,
		Subtotal:      decimal.NewFromInt(1500),
		TotalAmount:   decimal.NewFromInt(1500),
		PaidAmount:    decimal.NewFromInt(500),
		Currency:      entity.CurrencyAED,
		Location:      entity.LocationDubai,
		Notes:         "Entregar en el almacén 3",
		Customer:      &entity.Customer{Name: "Al Noor Trading", Phone: "+971 50 000 0000"},
		Items: []*entity.OrderItem{
			{Quantity: 1, UnitPrice: decimal.NewFromInt(1500), TotalPrice: decimal.NewFromInt(1500),
				Inventory: &entity.InventoryItem{SKU: "ENG-001", PartName: "Motor 1NZ-FE"}},
		},
	}

	b, err := NewOrderRenderer("Gulf Auto Parts").RenderOrder(o)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestRenderOrder_SinClienteNiLineas(t *testing.T) {
	b, err := NewOrderRenderer("").RenderOrder(&entity.Order{OrderNumber: "ORD-260307-0002"})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
