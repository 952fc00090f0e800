package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// PropertyIncome resultado de un inmueble en el periodo.
type PropertyIncome struct {
	PropertyID      string          `json:"property_id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Location        string          `json:"location"`
	Ownership       string          `json:"ownership"`
	MonthlyRent     decimal.Decimal `json:"monthly_rent"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	ActualIncome    decimal.Decimal `json:"actual_income"`
	ActualExpenses  decimal.Decimal `json:"actual_expenses"`
	NetIncome       decimal.Decimal `json:"net_income"`
	ExpectedRent    decimal.Decimal `json:"expected_rent"`
	Variance        decimal.Decimal `json:"variance"`
}

// IncomeGroup agregado por tipo o región.
type IncomeGroup struct {
	Count    int             `json:"count"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// PropertyIncomeSummary totales del reporte de inmuebles.
type PropertyIncomeSummary struct {
	Period          Window                  `json:"period"`
	TotalProperties int                     `json:"total_properties"`
	TotalIncome     decimal.Decimal         `json:"total_income"`
	TotalExpenses   decimal.Decimal         `json:"total_expenses"`
	NetIncome       decimal.Decimal         `json:"net_income"`
	ByType          map[string]*IncomeGroup `json:"by_type"`
	ByLocation      map[string]*IncomeGroup `json:"by_location"`
}

// PropertyIncomeReport ingresos de inmuebles del periodo.
type PropertyIncomeReport struct {
	Summary    PropertyIncomeSummary `json:"summary"`
	Properties []PropertyIncome      `json:"properties"`
}

// BuildPropertyIncome cruza cada inmueble con sus transacciones del periodo
// (txByProperty indexado por PropertyID). La varianza es ingreso real - renta esperada.
func BuildPropertyIncome(w Window, properties []*entity.Property, txByProperty map[string][]*entity.Transaction) PropertyIncomeReport {
	r := PropertyIncomeReport{
		Summary: PropertyIncomeSummary{
			Period:     w,
			ByType:     map[string]*IncomeGroup{},
			ByLocation: map[string]*IncomeGroup{},
		},
		Properties: make([]PropertyIncome, 0, len(properties)),
	}
	for _, p := range properties {
		pi := PropertyIncome{
			PropertyID:      p.ID,
			Name:            p.Name,
			Type:            p.Type,
			Location:        p.Location,
			Ownership:       p.Ownership,
			MonthlyRent:     p.MonthlyRent,
			MonthlyExpenses: p.MonthlyExpenses,
			ExpectedRent:    p.MonthlyRent,
		}
		for _, t := range txByProperty[p.ID] {
			if !w.Contains(t.Date) {
				continue
			}
			switch t.Type {
			case entity.TransactionTypeIncome:
				pi.ActualIncome = pi.ActualIncome.Add(t.Amount)
			case entity.TransactionTypeExpense:
				pi.ActualExpenses = pi.ActualExpenses.Add(t.Amount)
			}
		}
		pi.NetIncome = pi.ActualIncome.Sub(pi.ActualExpenses)
		pi.Variance = pi.ActualIncome.Sub(pi.ExpectedRent)
		r.Properties = append(r.Properties, pi)

		s := &r.Summary
		s.TotalIncome = s.TotalIncome.Add(pi.ActualIncome)
		s.TotalExpenses = s.TotalExpenses.Add(pi.ActualExpenses)
		s.NetIncome = s.NetIncome.Add(pi.NetIncome)
		addIncome(s.ByType, pi.Type, pi)
		addIncome(s.ByLocation, pi.Location, pi)
	}
	r.Summary.TotalProperties = len(r.Properties)
	return r
}

func addIncome(m map[string]*IncomeGroup, key string, pi PropertyIncome) {
	g, ok := m[key]
	if !ok {
		g = &IncomeGroup{}
		m[key] = g
	}
	g.Count++
	g.Income = g.Income.Add(pi.ActualIncome)
	g.Expenses = g.Expenses.Add(pi.ActualExpenses)
}
