package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Departamentos.
const (
	DepartmentManagement = "management"
	DepartmentSales      = "sales"
	DepartmentWarehouse  = "warehouse"
	DepartmentLogistics  = "logistics"
	DepartmentFinance    = "finance"
	DepartmentAdmin      = "admin"
)

// Estados de un empleado.
const (
	EmployeeStatusActive     = "active"
	EmployeeStatusOnLeave    = "on_leave"
	EmployeeStatusTerminated = "terminated"
)

// Frecuencias de pago de salario.
const (
	SalaryMonthly  = "monthly"
	SalaryBiweekly = "biweekly"
	SalaryWeekly   = "weekly"
)

// Employee empleado de cualquiera de las dos regiones.
type Employee struct {
	ID               string
	EmployeeID       string // código interno, único
	Name             string
	Email            string
	Phone            string
	Department       string
	Position         string
	Location         string
	HireDate         *time.Time
	Salary           decimal.Decimal
	SalaryCurrency   string
	SalaryFrequency  string
	Status           string
	VisaStatus       string
	VisaExpiry       *time.Time
	EmergencyContact string
	EmergencyPhone   string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Expenses []*Expense // opcional, cargado en el detalle
}
