package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// EmployeeFilter filtros de listado de empleados.
type EmployeeFilter struct {
	Department string
	Location   string
	Status     string
}

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	List(ctx context.Context, f EmployeeFilter, p Page) ([]*entity.Employee, int, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id string) error
}

// ExpenseFilter filtros de gastos.
type ExpenseFilter struct {
	EmployeeID string
	Status     string
	Location   string // región del empleado
	Date       DateRange
}

// ExpenseRepository puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	// List gastos con el nombre del empleado cargado, más recientes primero.
	List(ctx context.Context, f ExpenseFilter) ([]*entity.Expense, error)
}
