package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// Payable gasto de empleado pendiente de pago.
type Payable struct {
	ID              string          `json:"id"`
	EmployeeName    string          `json:"employee_name"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	DaysOutstanding int             `json:"days_outstanding"`
}

// PayablesSummary totales de cuentas por pagar.
type PayablesSummary struct {
	TotalPayables decimal.Decimal            `json:"total_payables"`
	ExpenseCount  int                        `json:"expense_count"`
	ByType        map[string]decimal.Decimal `json:"by_type"`
}

// PayablesReport cuentas por pagar.
type PayablesReport struct {
	Summary  PayablesSummary `json:"summary"`
	Payables []Payable       `json:"payables"`
}

// ListPayables reduce los gastos pendientes a cuentas por pagar.
func ListPayables(expenses []*entity.Expense, now time.Time) PayablesReport {
	r := PayablesReport{
		Summary:  PayablesSummary{ByType: map[string]decimal.Decimal{}},
		Payables: []Payable{},
	}
	for _, e := range expenses {
		if e.Status != entity.ExpenseStatusPending {
			continue
		}
		r.Payables = append(r.Payables, Payable{
			ID:              e.ID,
			EmployeeName:    e.EmployeeName,
			Type:            e.Type,
			Amount:          e.Amount,
			Currency:        e.Currency,
			Date:            e.Date,
			Description:     e.Description,
			DaysOutstanding: DaysBetween(e.Date, now),
		})
		r.Summary.TotalPayables = r.Summary.TotalPayables.Add(e.Amount)
		addTo(r.Summary.ByType, e.Type, e.Amount)
	}
	r.Summary.ExpenseCount = len(r.Payables)
	return r
}

// EmployeeCost costo de un empleado en el periodo.
type EmployeeCost struct {
	ID                 string                     `json:"id"`
	EmployeeID         string                     `json:"employee_id"`
	Name               string                     `json:"name"`
	Department         string                     `json:"department"`
	Position           string                     `json:"position"`
	Location           string                     `json:"location"`
	Salary             decimal.Decimal            `json:"salary"`
	SalaryCurrency     string                     `json:"salary_currency"`
	AdditionalExpenses decimal.Decimal            `json:"additional_expenses"`
	TotalCost          decimal.Decimal            `json:"total_cost"`
	ExpenseBreakdown   map[string]decimal.Decimal `json:"expense_breakdown"`
}

// CostGroup empleados y costo total de un grupo.
type CostGroup struct {
	Count     int             `json:"count"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// ExpenseSummary totales del reporte de gastos de personal.
type ExpenseSummary struct {
	Period                  Window                `json:"period"`
	TotalEmployees          int                   `json:"total_employees"`
	TotalSalary             decimal.Decimal       `json:"total_salary"`
	TotalAdditionalExpenses decimal.Decimal       `json:"total_additional_expenses"`
	TotalCost               decimal.Decimal       `json:"total_cost"`
	ByDepartment            map[string]*CostGroup `json:"by_department"`
	ByLocation              map[string]*CostGroup `json:"by_location"`
}

// ExpenseReport costo de personal del periodo.
type ExpenseReport struct {
	Summary   ExpenseSummary `json:"summary"`
	Employees []EmployeeCost `json:"employees"`
}

// BuildExpenseReport suma salario y gastos pagados dentro de la ventana por empleado.
// employee.Expenses debe venir cargado; los gastos fuera de la ventana o no pagados se ignoran.
func BuildExpenseReport(w Window, employees []*entity.Employee) ExpenseReport {
	r := ExpenseReport{
		Summary: ExpenseSummary{
			Period:       w,
			ByDepartment: map[string]*CostGroup{},
			ByLocation:   map[string]*CostGroup{},
		},
		Employees: make([]EmployeeCost, 0, len(employees)),
	}
	for _, emp := range employees {
		ec := EmployeeCost{
			ID:               emp.ID,
			EmployeeID:       emp.EmployeeID,
			Name:             emp.Name,
			Department:       emp.Department,
			Position:         emp.Position,
			Location:         emp.Location,
			Salary:           emp.Salary,
			SalaryCurrency:   emp.SalaryCurrency,
			ExpenseBreakdown: map[string]decimal.Decimal{},
		}
		for _, e := range emp.Expenses {
			if e.Status != entity.ExpenseStatusPaid || !w.Contains(e.Date) {
				continue
			}
			ec.AdditionalExpenses = ec.AdditionalExpenses.Add(e.Amount)
			addTo(ec.ExpenseBreakdown, e.Type, e.Amount)
		}
		ec.TotalCost = ec.Salary.Add(ec.AdditionalExpenses)
		r.Employees = append(r.Employees, ec)

		s := &r.Summary
		s.TotalSalary = s.TotalSalary.Add(ec.Salary)
		s.TotalAdditionalExpenses = s.TotalAdditionalExpenses.Add(ec.AdditionalExpenses)
		s.TotalCost = s.TotalCost.Add(ec.TotalCost)
		addCost(s.ByDepartment, ec.Department, ec.TotalCost)
		addCost(s.ByLocation, ec.Location, ec.TotalCost)
	}
	r.Summary.TotalEmployees = len(r.Employees)
	return r
}

func addCost(m map[string]*CostGroup, key string, cost decimal.Decimal) {
	g, ok := m[key]
	if !ok {
		g = &CostGroup{}
		m[key] = g
	}
	g.Count++
	g.TotalCost = g.TotalCost.Add(cost)
}
