package reporting

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// Aging saldos por antigüedad.
type Aging struct {
	Current    decimal.Decimal `json:"current"` // <= 30 días
	Days31To60 decimal.Decimal `json:"31-60"`
	Days61To90 decimal.Decimal `json:"61-90"`
	Over90     decimal.Decimal `json:"over90"`
}

// Receivable saldo pendiente de una orden.
type Receivable struct {
	OrderID         string          `json:"order_id"`
	OrderNumber     string          `json:"order_number"`
	CustomerName    string          `json:"customer_name"`
	OrderDate       time.Time       `json:"order_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	Balance         decimal.Decimal `json:"balance"`
	PaymentStatus   string          `json:"payment_status"`
	DaysOutstanding int             `json:"days_outstanding"`
}

// ReceivablesSummary totales de cuentas por cobrar.
type ReceivablesSummary struct {
	TotalReceivables       decimal.Decimal `json:"total_receivables"`
	OrderCount             int             `json:"order_count"`
	AverageOutstandingDays int             `json:"average_outstanding_days"`
	Aging                  Aging           `json:"aging"`
}

// ReceivablesReport cuentas por cobrar con antigüedad.
type ReceivablesReport struct {
	Summary     ReceivablesSummary `json:"summary"`
	Receivables []Receivable       `json:"receivables"`
}

// AgeReceivables agrupa por antigüedad el saldo de toda orden con paymentStatus != paid.
// La antigüedad es floor((now - orderDate) / 1 día).
func AgeReceivables(orders []*entity.Order, now time.Time) ReceivablesReport {
	r := ReceivablesReport{Receivables: []Receivable{}}
	totalDays := 0
	for _, o := range orders {
		if o.PaymentStatus == entity.PaymentStatusPaid {
			continue
		}
		days := DaysBetween(o.OrderDate, now)
		balance := o.Balance()
		name := ""
		if o.Customer != nil {
			name = o.Customer.Name
		}
		r.Receivables = append(r.Receivables, Receivable{
			OrderID:         o.ID,
			OrderNumber:     o.OrderNumber,
			CustomerName:    name,
			OrderDate:       o.OrderDate,
			TotalAmount:     o.TotalAmount,
			PaidAmount:      o.PaidAmount,
			Balance:         balance,
			PaymentStatus:   o.PaymentStatus,
			DaysOutstanding: days,
		})
		totalDays += days
		r.Summary.TotalReceivables = r.Summary.TotalReceivables.Add(balance)

		a := &r.Summary.Aging
		switch {
		case days <= 30:
			a.Current = a.Current.Add(balance)
		case days <= 60:
			a.Days31To60 = a.Days31To60.Add(balance)
		case days <= 90:
			a.Days61To90 = a.Days61To90.Add(balance)
		default:
			a.Over90 = a.Over90.Add(balance)
		}
	}
	r.Summary.OrderCount = len(r.Receivables)
	if n := len(r.Receivables); n > 0 {
		r.Summary.AverageOutstandingDays = int(math.Round(float64(totalDays) / float64(n)))
	}
	return r
}
