package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest body de POST y PUT /api/employees.
type EmployeeRequest struct {
	EmployeeID       string          `json:"employee_id" validate:"required,max=50"`
	Name             string          `json:"name" validate:"required,max=200"`
	Email            string          `json:"email" validate:"omitempty,email"`
	Phone            string          `json:"phone" validate:"max=50"`
	Department       string          `json:"department" validate:"required,oneof=management sales warehouse logistics finance admin"`
	Position         string          `json:"position" validate:"max=100"`
	Location         string          `json:"location" validate:"required,oneof=japan dubai"`
	HireDate         *Date           `json:"hire_date"`
	Salary           decimal.Decimal `json:"salary" validate:"gte=0"`
	SalaryCurrency   string          `json:"salary_currency" validate:"omitempty,oneof=JPY AED USD"`
	SalaryFrequency  string          `json:"salary_frequency" validate:"omitempty,oneof=monthly biweekly weekly"`
	Status           string          `json:"status" validate:"omitempty,oneof=active on_leave terminated"`
	VisaStatus       string          `json:"visa_status" validate:"max=50"`
	VisaExpiry       *Date           `json:"visa_expiry"`
	EmergencyContact string          `json:"emergency_contact" validate:"max=200"`
	EmergencyPhone   string          `json:"emergency_phone" validate:"max=50"`
	Notes            string          `json:"notes"`
}

// EmployeeFilter query de GET /api/employees.
type EmployeeFilter struct {
	PageRequest
	Department string `query:"department"`
	Location   string `query:"location"`
	Status     string `query:"status"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID               string            `json:"id"`
	EmployeeID       string            `json:"employee_id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Department       string            `json:"department"`
	Position         string            `json:"position"`
	Location         string            `json:"location"`
	HireDate         *Date             `json:"hire_date"`
	Salary           decimal.Decimal   `json:"salary"`
	SalaryCurrency   string            `json:"salary_currency"`
	SalaryFrequency  string            `json:"salary_frequency"`
	Status           string            `json:"status"`
	VisaStatus       string            `json:"visa_status"`
	VisaExpiry       *Date             `json:"visa_expiry"`
	EmergencyContact string            `json:"emergency_contact"`
	EmergencyPhone   string            `json:"emergency_phone"`
	Notes            string            `json:"notes"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	Expenses         []ExpenseResponse `json:"expenses,omitempty"`
}

// ExpenseRequest body de POST /api/employees/:id/expenses.
type ExpenseRequest struct {
	Type        string          `json:"type" validate:"required,oneof=salary bonus allowance reimbursement deduction"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency    string          `json:"currency" validate:"omitempty,oneof=JPY AED USD"`
	Date        *Date           `json:"date" validate:"required"`
	Description string          `json:"description"`
	Status      string          `json:"status" validate:"omitempty,oneof=pending approved paid rejected"`
	PaidDate    *Date           `json:"paid_date"`
	Notes       string          `json:"notes"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Date         Date            `json:"date"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	ApprovedBy   *string         `json:"approved_by"`
	PaidDate     *Date           `json:"paid_date"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
}
