package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// SalesSummary ventas de un periodo, excluyendo órdenes canceladas.
type SalesSummary struct {
	TotalOrders     int             `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	ByStatus        map[string]int  `json:"by_status"`
	ByPaymentStatus map[string]int  `json:"by_payment_status"`
}

// SummarizeSales agrega montos y conteos de las órdenes no canceladas.
func SummarizeSales(orders []*entity.Order) SalesSummary {
	s := SalesSummary{ByStatus: map[string]int{}, ByPaymentStatus: map[string]int{}}
	for _, o := range orders {
		if o.Status == entity.OrderStatusCancelled {
			continue
		}
		s.TotalOrders++
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalAmount)
		s.PaidAmount = s.PaidAmount.Add(o.PaidAmount)
		s.PendingAmount = s.PendingAmount.Add(o.Balance())
		s.ByStatus[o.Status]++
		s.ByPaymentStatus[o.PaymentStatus]++
	}
	return s
}

// Revenue Σ totalAmount de las órdenes dadas.
func Revenue(orders []*entity.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.TotalAmount)
	}
	return sum
}
