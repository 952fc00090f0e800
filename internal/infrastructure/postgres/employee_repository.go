package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.ExpenseRepository  = (*ExpenseRepo)(nil)
)

// ── Empleados ──

// EmployeeRepo implementación de EmployeeRepository.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, employee_id, name, email, phone, department, position, location, hire_date,
	salary, salary_currency, salary_frequency, status, visa_status, visa_expiry, emergency_contact,
	emergency_phone, notes, created_at, updated_at`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.EmployeeID, &e.Name, &e.Email, &e.Phone, &e.Department, &e.Position, &e.Location,
		&e.HireDate, &e.Salary, &e.SalaryCurrency, &e.SalaryFrequency, &e.Status, &e.VisaStatus, &e.VisaExpiry,
		&e.EmergencyContact, &e.EmergencyPhone, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.EmployeeID, e.Name, e.Email, e.Phone, e.Department, e.Position, e.Location, e.HireDate,
		e.Salary, e.SalaryCurrency, e.SalaryFrequency, e.Status, e.VisaStatus, e.VisaExpiry, e.EmergencyContact,
		e.EmergencyPhone, e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	return mapWriteError("insert employee", err)
}

// GetByID obtiene un empleado. Devuelve nil, nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// List lista empleados por nombre.
func (r *EmployeeRepo) List(ctx context.Context, f repository.EmployeeFilter, p repository.Page) ([]*entity.Employee, int, error) {
	w := &where{}
	w.eq("department", f.Department)
	w.eq("location", f.Location)
	w.eq("status", f.Status)

	var total int
	if err := r.q.QueryRow(ctx, w.countSQL("employees"), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM employees`+w.sql()+` ORDER BY name`+w.limit(p), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

// Update reemplaza los campos editables.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE employees SET employee_id = $2, name = $3, email = $4, phone = $5, department = $6, position = $7,
			location = $8, hire_date = $9, salary = $10, salary_currency = $11, salary_frequency = $12,
			status = $13, visa_status = $14, visa_expiry = $15, emergency_contact = $16, emergency_phone = $17,
			notes = $18, updated_at = $19
		WHERE id = $1`,
		e.ID, e.EmployeeID, e.Name, e.Email, e.Phone, e.Department, e.Position, e.Location, e.HireDate,
		e.Salary, e.SalaryCurrency, e.SalaryFrequency, e.Status, e.VisaStatus, e.VisaExpiry, e.EmergencyContact,
		e.EmergencyPhone, e.Notes, e.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina al empleado y sus gastos.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "employees", id)
}

// ── Gastos ──

// ExpenseRepo implementación de ExpenseRepository.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO expenses (id, employee_id, type, amount, currency, date, description, status,
			approved_by, paid_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		e.ID, e.EmployeeID, e.Type, e.Amount, e.Currency, e.Date, e.Description, e.Status,
		e.ApprovedBy, e.PaidDate, e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	return mapWriteError("insert expense", err)
}

// List gastos filtrados con el nombre del empleado, más recientes primero.
func (r *ExpenseRepo) List(ctx context.Context, f repository.ExpenseFilter) ([]*entity.Expense, error) {
	w := &where{}
	w.eq("x.employee_id::text", f.EmployeeID)
	w.eq("x.status", f.Status)
	w.eq("e.location", f.Location)
	w.dates("x.date", f.Date)
	rows, err := r.q.Query(ctx, `
		SELECT x.id, x.employee_id, x.type, x.amount, x.currency, x.date, x.description, x.status,
			x.approved_by, x.paid_date, x.notes, x.created_at, x.updated_at, e.name
		FROM expenses x JOIN employees e ON e.id = x.employee_id`+w.sql()+`
		ORDER BY x.date DESC, x.created_at DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Expense, 0)
	for rows.Next() {
		var x entity.Expense
		if err := rows.Scan(&x.ID, &x.EmployeeID, &x.Type, &x.Amount, &x.Currency, &x.Date, &x.Description,
			&x.Status, &x.ApprovedBy, &x.PaidDate, &x.Notes, &x.CreatedAt, &x.UpdatedAt, &x.EmployeeName); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &x)
	}
	return list, rows.Err()
}
