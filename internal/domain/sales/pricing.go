// Package sales reúne las reglas puras del flujo de ventas: precio de línea,
// totales de la orden, estado de pago y formato de números de documento.
package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// MoneyPlaces decimales que admiten las columnas de importes (NUMERIC(14,2)).
const MoneyPlaces = 2

// CheckMoney rechaza importes con más decimales de los que se persisten; redondearlos
// al guardar descuadraría los totales ya calculados.
func CheckMoney(field string, v decimal.Decimal) error {
	if !v.Equal(v.Round(MoneyPlaces)) {
		return fmt.Errorf("%s admite como máximo %d decimales: %w", field, MoneyPlaces, domain.ErrInvalidInput)
	}
	return nil
}

// UnitPrice precio unitario efectivo de una línea: el indicado por el llamador o,
// si no viene, el precio de venta actual de la pieza.
func UnitPrice(requested decimal.NullDecimal, item *entity.InventoryItem) (decimal.Decimal, error) {
	if requested.Valid {
		if requested.Decimal.IsNegative() {
			return decimal.Zero, fmt.Errorf("precio unitario negativo: %w", domain.ErrInvalidInput)
		}
		if err := CheckMoney("unit_price", requested.Decimal); err != nil {
			return decimal.Zero, err
		}
		return requested.Decimal, nil
	}
	if !item.SellingPrice.Valid {
		return decimal.Zero, fmt.Errorf("la pieza %s no tiene precio de venta; indique unit_price: %w", item.SKU, domain.ErrInvalidInput)
	}
	return item.SellingPrice.Decimal, nil
}

// LineTotal = unitPrice * quantity - discount.
func LineTotal(unitPrice decimal.Decimal, quantity int, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Sub(discount)
}

// OrderTotal = subtotal - discount + tax + shippingCost.
func OrderTotal(subtotal, discount, tax, shippingCost decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Add(tax).Add(shippingCost)
}

// Subtotal suma los totales de línea.
func Subtotal(items []*entity.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalPrice)
	}
	return sum
}

// PaymentStatusFor estado de pago derivado solo de lo pagado frente al total:
// unpaid si paid == 0, paid si paid >= total, partial si 0 < paid < total.
// Sin pagos la orden es unpaid aunque su total sea cero.
func PaymentStatusFor(paid, total decimal.Decimal) string {
	switch {
	case !paid.IsPositive():
		return entity.PaymentStatusUnpaid
	case paid.GreaterThanOrEqual(total):
		return entity.PaymentStatusPaid
	default:
		return entity.PaymentStatusPartial
	}
}

// Recalculate recalcula total y estado de pago de la orden a partir de sus montos.
func Recalculate(o *entity.Order) {
	o.TotalAmount = OrderTotal(o.Subtotal, o.Discount, o.Tax, o.ShippingCost)
	o.PaymentStatus = PaymentStatusFor(o.PaidAmount, o.TotalAmount)
}
