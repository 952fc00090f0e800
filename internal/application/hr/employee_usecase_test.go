package hr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

type memEmployees struct{ byID map[string]*entity.Employee }

func (r *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	r.byID[e.ID] = e
	return nil
}

func (r *memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return r.byID[id], nil
}

func (r *memEmployees) List(_ context.Context, f repository.EmployeeFilter, _ repository.Page) ([]*entity.Employee, int, error) {
	out := []*entity.Employee{}
	for _, e := range r.byID {
		if f.Location != "" && e.Location != f.Location {
			continue
		}
		out = append(out, e)
	}
	return out, len(out), nil
}

func (r *memEmployees) Update(_ context.Context, e *entity.Employee) error {
	r.byID[e.ID] = e
	return nil
}

func (r *memEmployees) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type memExpenses struct {
	list      []*entity.Expense
	employees *memEmployees
	lastQuery repository.ExpenseFilter
}

func (r *memExpenses) Create(_ context.Context, e *entity.Expense) error {
	r.list = append(r.list, e)
	return nil
}

func (r *memExpenses) List(_ context.Context, f repository.ExpenseFilter) ([]*entity.Expense, error) {
	r.lastQuery = f
	out := []*entity.Expense{}
	for _, e := range r.list {
		emp := r.employees.byID[e.EmployeeID]
		switch {
		case f.EmployeeID != "" && e.EmployeeID != f.EmployeeID,
			f.Status != "" && e.Status != f.Status,
			f.Location != "" && (emp == nil || emp.Location != f.Location),
			f.Date.From != nil && e.Date.Before(*f.Date.From),
			f.Date.To != nil && e.Date.After(*f.Date.To):
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, dd int) time.Time { return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC) }

func datePtr(t time.Time) *dto.Date {
	dd := dto.NewDate(t)
	return &dd
}

func newUseCase() (*EmployeeUseCase, *memEmployees, *memExpenses) {
	emps := &memEmployees{byID: map[string]*entity.Employee{}}
	exps := &memExpenses{employees: emps}
	uc := NewEmployeeUseCase(emps, exps)
	uc.now = func() time.Time { return time.Date(2026, time.March, 20, 9, 0, 0, 0, time.UTC) }
	return uc, emps, exps
}

func TestCreate_Defaults(t *testing.T) {
	uc, _, _ := newUseCase()
	e, err := uc.Create(context.Background(), dto.EmployeeRequest{
		EmployeeID: " EMP-001 ",
		Name:       "Rashid",
		Department: entity.DepartmentWarehouse,
		Location:   entity.LocationDubai,
		Salary:     d("4500"),
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", e.EmployeeID)
	assert.Equal(t, entity.EmployeeStatusActive, e.Status)
	assert.Equal(t, entity.SalaryMonthly, e.SalaryFrequency)
	assert.Equal(t, entity.CurrencyAED, e.SalaryCurrency)
}

func TestAddExpense(t *testing.T) {
	uc, emps, exps := newUseCase()
	emps.byID["e1"] = &entity.Employee{ID: "e1", Name: "Kenji", Location: entity.LocationJapan, SalaryCurrency: entity.CurrencyJPY}
	ctx := context.Background()

	_, err := uc.AddExpense(ctx, "nope", "", dto.ExpenseRequest{Type: entity.ExpenseTypeBonus, Amount: d("10"), Date: datePtr(day(2026, 3, 1))})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.AddExpense(ctx, "e1", "", dto.ExpenseRequest{Type: entity.ExpenseTypeBonus, Amount: d("0"), Date: datePtr(day(2026, 3, 1))})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	pending, err := uc.AddExpense(ctx, "e1", "u-admin", dto.ExpenseRequest{Type: entity.ExpenseTypeAllowance, Amount: d("20000"), Date: datePtr(day(2026, 3, 2))})
	require.NoError(t, err)
	assert.Equal(t, entity.ExpenseStatusPending, pending.Status)
	assert.Equal(t, entity.CurrencyJPY, pending.Currency, "por defecto la moneda del salario")
	assert.Nil(t, pending.ApprovedBy)

	paid, err := uc.AddExpense(ctx, "e1", "u-admin", dto.ExpenseRequest{Type: entity.ExpenseTypeBonus, Amount: d("50000"), Date: datePtr(day(2026, 3, 5)), Status: entity.ExpenseStatusPaid})
	require.NoError(t, err)
	require.NotNil(t, paid.ApprovedBy)
	assert.Equal(t, "u-admin", *paid.ApprovedBy)
	require.NotNil(t, paid.PaidDate)
	assert.Equal(t, "2026-03-05", paid.PaidDate.Format("2006-01-02"))
	assert.Len(t, exps.list, 2)

	got, err := uc.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, got.Expenses, 2)
}

func TestExpenseReport_SoloPagadosDelMes(t *testing.T) {
	uc, emps, exps := newUseCase()
	emps.byID["e1"] = &entity.Employee{ID: "e1", Name: "Kenji", Department: entity.DepartmentLogistics, Location: entity.LocationJapan, Salary: d("300000")}
	emps.byID["e2"] = &entity.Employee{ID: "e2", Name: "Omar", Department: entity.DepartmentSales, Location: entity.LocationDubai, Salary: d("6000")}
	exps.list = []*entity.Expense{
		{ID: "x1", EmployeeID: "e2", Type: entity.ExpenseTypeBonus, Amount: d("500"), Status: entity.ExpenseStatusPaid, Date: day(2026, 2, 10)},
		{ID: "x2", EmployeeID: "e2", Type: entity.ExpenseTypeAllowance, Amount: d("250"), Status: entity.ExpenseStatusPaid, Date: day(2026, 2, 28)},
		{ID: "x3", EmployeeID: "e2", Type: entity.ExpenseTypeBonus, Amount: d("900"), Status: entity.ExpenseStatusPending, Date: day(2026, 2, 15)},
		{ID: "x4", EmployeeID: "e2", Type: entity.ExpenseTypeBonus, Amount: d("700"), Status: entity.ExpenseStatusPaid, Date: day(2026, 3, 1)},
	}

	r, err := uc.ExpenseReport(context.Background(), dto.PeriodQuery{Year: 2026, Month: 2, Location: entity.LocationDubai})
	require.NoError(t, err)
	require.Len(t, r.Employees, 1)
	omar := r.Employees[0]
	assert.True(t, d("750").Equal(omar.AdditionalExpenses), "got %s", omar.AdditionalExpenses)
	assert.True(t, d("6750").Equal(omar.TotalCost))
	assert.True(t, d("500").Equal(omar.ExpenseBreakdown[entity.ExpenseTypeBonus]))
	assert.Equal(t, 1, r.Summary.ByDepartment[entity.DepartmentSales].Count)

	require.NotNil(t, exps.lastQuery.Date.To)
	assert.Equal(t, day(2026, 2, 28), exps.lastQuery.Date.To.Truncate(24*time.Hour), "el último día del mes entra completo")

	_, err = uc.ExpenseReport(context.Background(), dto.PeriodQuery{StartDate: "2026-02-01"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
