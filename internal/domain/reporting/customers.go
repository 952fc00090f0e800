package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// CustomerBalance saldo de un cliente calculado desde sus órdenes.
type CustomerBalance struct {
	CustomerID        string          `json:"customer_id"`
	Name              string          `json:"name"`
	CreditLimit       decimal.Decimal `json:"credit_limit"`
	CurrentBalance    decimal.Decimal `json:"current_balance"`
	OutstandingOrders int             `json:"outstanding_orders"`
	TotalOutstanding  decimal.Decimal `json:"total_outstanding"`
	AvailableCredit   decimal.Decimal `json:"available_credit"`
}

// ComputeCustomerBalance outstanding = Σ(total - pagado) de órdenes no pagadas;
// crédito disponible = límite - outstanding.
func ComputeCustomerBalance(c *entity.Customer, orders []*entity.Order) CustomerBalance {
	b := CustomerBalance{
		CustomerID:     c.ID,
		Name:           c.Name,
		CreditLimit:    c.CreditLimit,
		CurrentBalance: c.CurrentBalance,
	}
	for _, o := range orders {
		if o.PaymentStatus == entity.PaymentStatusPaid {
			continue
		}
		b.OutstandingOrders++
		b.TotalOutstanding = b.TotalOutstanding.Add(o.Balance())
	}
	b.AvailableCredit = c.CreditLimit.Sub(b.TotalOutstanding)
	return b
}
