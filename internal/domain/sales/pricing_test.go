package sales

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestUnitPrice_UsaPrecioDeVentaPorDefecto(t *testing.T) {
	item := &entity.InventoryItem{SKU: "ENG-001", SellingPrice: decimal.NewNullDecimal(d("1000"))}

	p, err := UnitPrice(decimal.NullDecimal{}, item)
	require.NoError(t, err)
	assert.True(t, d("1000").Equal(p))

	p, err = UnitPrice(decimal.NewNullDecimal(d("900")), item)
	require.NoError(t, err)
	assert.True(t, d("900").Equal(p), "el precio explícito tiene prioridad")
}

func TestUnitPrice_SinPrecioDeVentaEsInvalido(t *testing.T) {
	item := &entity.InventoryItem{SKU: "BRK-010", CostPrice: d("50")}
	_, err := UnitPrice(decimal.NullDecimal{}, item)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = UnitPrice(decimal.NewNullDecimal(d("-1")), item)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLineTotalYOrderTotal(t *testing.T) {
	line := LineTotal(d("1000"), 5, d("0"))
	assert.True(t, d("5000").Equal(line))

	line = LineTotal(d("19.99"), 3, d("5"))
	assert.True(t, d("54.97").Equal(line))

	total := OrderTotal(d("5000"), d("100"), d("250"), d("75.50"))
	assert.True(t, d("5225.50").Equal(total))
}

func TestSubtotal(t *testing.T) {
	items := []*entity.OrderItem{{TotalPrice: d("10.10")}, {TotalPrice: d("0.20")}}
	assert.True(t, d("10.30").Equal(Subtotal(items)))
	assert.True(t, decimal.Zero.Equal(Subtotal(nil)))
}

func TestPaymentStatusFor_Limites(t *testing.T) {
	total := d("1000")
	cases := []struct {
		name string
		paid string
		want string
	}{
		{"sin pago", "0", entity.PaymentStatusUnpaid},
		{"pago parcial", "600", entity.PaymentStatusPartial},
		{"pago exacto", "1000", entity.PaymentStatusPaid},
		{"sobrepago", "1200", entity.PaymentStatusPaid},
		{"cerca del total", "999.99", entity.PaymentStatusPartial},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PaymentStatusFor(d(tc.paid), total))
		})
	}
}

func TestRecalculate(t *testing.T) {
	o := &entity.Order{Subtotal: d("1000"), Discount: d("100"), Tax: d("50"), ShippingCost: d("50"), PaidAmount: d("400")}
	Recalculate(o)
	assert.True(t, d("1000").Equal(o.TotalAmount))
	assert.Equal(t, entity.PaymentStatusPartial, o.PaymentStatus)
	assert.True(t, d("600").Equal(o.Balance()))
}

func TestDocumentNumber(t *testing.T) {
	at := time.Date(2026, time.March, 7, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "ORD-260307-0042", DocumentNumber(PrefixOrder, at, 42))
	assert.Equal(t, "TXN-260307-12345", DocumentNumber(PrefixTransaction, at, 12345))
}

func TestPaymentStatusFor_TotalCeroSinPagoEsUnpaid(t *testing.T) {
	assert.Equal(t, entity.PaymentStatusUnpaid, PaymentStatusFor(decimal.Zero, decimal.Zero))
	assert.Equal(t, entity.PaymentStatusPaid, PaymentStatusFor(d("0.01"), decimal.Zero))
}

func TestCheckMoney_MaximoDosDecimales(t *testing.T) {
	for _, ok := range []string{"0", "100", "99.99", "0.01", "100.000"} {
		assert.NoError(t, CheckMoney("amount", d(ok)), ok)
	}
	for _, bad := range []string{"99.996", "0.005", "1.001"} {
		err := CheckMoney("amount", d(bad))
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), bad)
	}

	item := &entity.InventoryItem{SKU: "ENG-001"}
	_, err := UnitPrice(decimal.NewNullDecimal(d("0.005")), item)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
