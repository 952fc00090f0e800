package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// Flow ingresos y egresos de un grupo.
type Flow struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

func (f *Flow) add(txType string, amount decimal.Decimal) {
	switch txType {
	case entity.TransactionTypeIncome:
		f.Income = f.Income.Add(amount)
	case entity.TransactionTypeExpense:
		f.Expense = f.Expense.Add(amount)
	}
}

// CategoryTotals total y desglose por categoría.
type CategoryTotals struct {
	Total      decimal.Decimal            `json:"total"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
}

// FinancialSummary resumen de transacciones de un periodo.
type FinancialSummary struct {
	Period           Window           `json:"period"`
	Income           CategoryTotals   `json:"income"`
	Expense          CategoryTotals   `json:"expense"`
	NetIncome        decimal.Decimal  `json:"net_income"`
	ByAccount        map[string]*Flow `json:"by_account"`
	ByLocation       map[string]*Flow `json:"by_location"`
	TransactionCount int              `json:"transaction_count"`
}

// SummarizeTransactions agrupa ingresos y egresos por categoría, cuenta y región.
// Las transferencias cuentan en TransactionCount pero no suman en ningún lado.
func SummarizeTransactions(w Window, txns []*entity.Transaction) FinancialSummary {
	s := FinancialSummary{
		Period:     w,
		Income:     CategoryTotals{ByCategory: map[string]decimal.Decimal{}},
		Expense:    CategoryTotals{ByCategory: map[string]decimal.Decimal{}},
		ByAccount:  map[string]*Flow{},
		ByLocation: map[string]*Flow{},
	}
	for _, t := range txns {
		s.TransactionCount++
		switch t.Type {
		case entity.TransactionTypeIncome:
			s.Income.Total = s.Income.Total.Add(t.Amount)
			addTo(s.Income.ByCategory, t.Category, t.Amount)
		case entity.TransactionTypeExpense:
			s.Expense.Total = s.Expense.Total.Add(t.Amount)
			addTo(s.Expense.ByCategory, t.Category, t.Amount)
		}
		if t.Account != "" {
			flowFor(s.ByAccount, t.Account).add(t.Type, t.Amount)
		}
		flowFor(s.ByLocation, t.Location).add(t.Type, t.Amount)
	}
	s.NetIncome = s.Income.Total.Sub(s.Expense.Total)
	return s
}

func flowFor(m map[string]*Flow, key string) *Flow {
	f, ok := m[key]
	if !ok {
		f = &Flow{}
		m[key] = f
	}
	return f
}

// MonthFlow flujo de caja de un mes.
type MonthFlow struct {
	Month         int             `json:"month"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	Net           decimal.Decimal `json:"net"`
	CumulativeNet decimal.Decimal `json:"cumulative_net"`
}

// CashFlow flujo de caja anual.
type CashFlow struct {
	Year   int         `json:"year"`
	Months []MonthFlow `json:"cash_flow"`
}

// ComputeCashFlow neto mensual (ingresos - egresos) de un año con acumulado
// en orden cronológico. Siempre devuelve los 12 meses.
func ComputeCashFlow(year int, txns []*entity.Transaction) CashFlow {
	months := make([]MonthFlow, 12)
	for i := range months {
		months[i].Month = i + 1
	}
	for _, t := range txns {
		if t.Date.Year() != year {
			continue
		}
		m := &months[t.Date.Month()-1]
		switch t.Type {
		case entity.TransactionTypeIncome:
			m.Income = m.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			m.Expense = m.Expense.Add(t.Amount)
		}
	}
	running := decimal.Zero
	for i := range months {
		months[i].Net = months[i].Income.Sub(months[i].Expense)
		running = running.Add(months[i].Net)
		months[i].CumulativeNet = running
	}
	return CashFlow{Year: year, Months: months}
}

// AccountBalances saldo de las cuatro cuentas fijas.
type AccountBalances struct {
	Balances map[string]decimal.Decimal `json:"balances"`
	Total    decimal.Decimal            `json:"total"`
}

// ComputeAccountBalances ingresos suman y egresos restan en la cuenta de la transacción.
// Transferencias y cuentas desconocidas se ignoran.
func ComputeAccountBalances(txns []*entity.Transaction) AccountBalances {
	b := AccountBalances{Balances: make(map[string]decimal.Decimal, len(entity.Accounts))}
	for _, a := range entity.Accounts {
		b.Balances[a] = decimal.Zero
	}
	for _, t := range txns {
		cur, ok := b.Balances[t.Account]
		if !ok {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			b.Balances[t.Account] = cur.Add(t.Amount)
		case entity.TransactionTypeExpense:
			b.Balances[t.Account] = cur.Sub(t.Amount)
		}
	}
	for _, v := range b.Balances {
		b.Total = b.Total.Add(v)
	}
	return b
}
