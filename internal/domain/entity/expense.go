package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de gasto de empleado.
const (
	ExpenseTypeSalary        = "salary"
	ExpenseTypeBonus         = "bonus"
	ExpenseTypeAllowance     = "allowance"
	ExpenseTypeReimbursement = "reimbursement"
	ExpenseTypeDeduction     = "deduction"
)

// Estados de un gasto.
const (
	ExpenseStatusPending  = "pending"
	ExpenseStatusApproved = "approved"
	ExpenseStatusPaid     = "paid"
	ExpenseStatusRejected = "rejected"
)

// Expense gasto asociado a un empleado. Un gasto pendiente es una cuenta por pagar.
type Expense struct {
	ID          string
	EmployeeID  string
	Type        string
	Amount      decimal.Decimal
	Currency    string
	Date        time.Time
	Description string
	Status      string
	ApprovedBy  *string
	PaidDate    *time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EmployeeName string // opcional, cargado en reportes
}
