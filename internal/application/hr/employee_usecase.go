// Package hr casos de uso de empleados y sus gastos (salarios, bonos, reembolsos).
package hr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de empleados, alta de gastos y reporte de costo de personal.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
	expenseRepo  repository.ExpenseRepository
	now          func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository, expenseRepo repository.ExpenseRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo, expenseRepo: expenseRepo, now: time.Now}
}

// Create da de alta un empleado. employee_id es único (ErrDuplicate).
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	now := uc.now()
	e := &entity.Employee{ID: uuid.New().String(), CreatedAt: now}
	applyEmployee(e, in)
	e.UpdatedAt = now
	if err := uc.employeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := dto.NewEmployeeResponse(e)
	return &resp, nil
}

// Get detalle con todos sus gastos.
func (uc *EmployeeUseCase) Get(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Expenses, err = uc.expenseRepo.List(ctx, repository.ExpenseFilter{EmployeeID: id})
	if err != nil {
		return nil, err
	}
	resp := dto.NewEmployeeResponse(e)
	return &resp, nil
}

// List empleados paginados.
func (uc *EmployeeUseCase) List(ctx context.Context, f dto.EmployeeFilter) (*dto.ListResponse[dto.EmployeeResponse], error) {
	filter := repository.EmployeeFilter{Department: f.Department, Location: f.Location, Status: f.Status}
	list, total, err := uc.employeeRepo.List(ctx, filter, f.ToRepo())
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.NewEmployeeResponse(e))
	}
	page := dto.NewListResponse(out, total, f.PageRequest)
	return &page, nil
}

// Update reemplaza los campos editables.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyEmployee(e, in)
	e.UpdatedAt = uc.now()
	if err := uc.employeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := dto.NewEmployeeResponse(e)
	return &resp, nil
}

// Delete borra el empleado junto con sus gastos.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.employeeRepo.Delete(ctx, id)
}

// AddExpense registra un gasto del empleado. Un gasto aprobado o pagado queda a nombre de
// approvedBy; uno pagado sin paid_date toma la fecha del gasto.
func (uc *EmployeeUseCase) AddExpense(ctx context.Context, employeeID, approvedBy string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	emp, err := uc.get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("amount debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	date := in.Date.TimePtr()
	if date == nil {
		return nil, fmt.Errorf("date requerida: %w", domain.ErrInvalidInput)
	}
	now := uc.now()
	e := &entity.Expense{
		ID:           uuid.New().String(),
		EmployeeID:   emp.ID,
		Type:         in.Type,
		Amount:       in.Amount,
		Currency:     orDefault(in.Currency, emp.SalaryCurrency),
		Date:         *date,
		Description:  in.Description,
		Status:       orDefault(in.Status, entity.ExpenseStatusPending),
		PaidDate:     in.PaidDate.TimePtr(),
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
		EmployeeName: emp.Name,
	}
	if e.Currency == "" {
		e.Currency = entity.CurrencyAED
	}
	switch e.Status {
	case entity.ExpenseStatusApproved, entity.ExpenseStatusPaid:
		if approvedBy != "" {
			e.ApprovedBy = &approvedBy
		}
	}
	if e.Status == entity.ExpenseStatusPaid && e.PaidDate == nil {
		e.PaidDate = date
	}
	if err := uc.expenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := dto.NewExpenseResponse(e)
	return &resp, nil
}

// ExpenseReport costo de personal del periodo: salario más gastos pagados dentro de la ventana.
func (uc *EmployeeUseCase) ExpenseReport(ctx context.Context, q dto.PeriodQuery) (*reporting.ExpenseReport, error) {
	w, err := q.Window(uc.now())
	if err != nil {
		return nil, err
	}
	employees, _, err := uc.employeeRepo.List(ctx, repository.EmployeeFilter{Location: q.Location}, repository.Page{})
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.List(ctx, repository.ExpenseFilter{
		Status:   entity.ExpenseStatusPaid,
		Location: q.Location,
		Date:     repository.Days(w.From, w.To),
	})
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[string][]*entity.Expense, len(employees))
	for _, e := range expenses {
		byEmployee[e.EmployeeID] = append(byEmployee[e.EmployeeID], e)
	}
	for _, emp := range employees {
		emp.Expenses = byEmployee[emp.ID]
	}
	r := reporting.BuildExpenseReport(w, employees)
	return &r, nil
}

func (uc *EmployeeUseCase) get(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("empleado %s: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

func applyEmployee(e *entity.Employee, in dto.EmployeeRequest) {
	e.EmployeeID = strings.TrimSpace(in.EmployeeID)
	e.Name = strings.TrimSpace(in.Name)
	e.Email = strings.TrimSpace(in.Email)
	e.Phone = in.Phone
	e.Department = in.Department
	e.Position = in.Position
	e.Location = in.Location
	e.HireDate = in.HireDate.TimePtr()
	e.Salary = in.Salary
	e.SalaryCurrency = orDefault(in.SalaryCurrency, entity.CurrencyAED)
	e.SalaryFrequency = orDefault(in.SalaryFrequency, entity.SalaryMonthly)
	e.Status = orDefault(in.Status, entity.EmployeeStatusActive)
	e.VisaStatus = in.VisaStatus
	e.VisaExpiry = in.VisaExpiry.TimePtr()
	e.EmergencyContact = in.EmergencyContact
	e.EmergencyPhone = in.EmergencyPhone
	e.Notes = in.Notes
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
