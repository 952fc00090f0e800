package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/application/hr"
)

// EmployeeHandler personal, sus gastos y el reporte mensual de gastos.
type EmployeeHandler struct {
	uc   *hr.EmployeeUseCase
	errs errorWriter
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *hr.EmployeeUseCase, errs errorWriter) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, errs: errs}
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var f dto.EmployeeFilter
	if err := bindQuery(c, &f); err != nil {
		return h.errs.write(c, err)
	}
	page, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(page)
}

// Get GET /api/employees/:id (incluye gastos)
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.EmployeeRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleado eliminado"})
}

// AddExpense POST /api/employees/:id/expenses. Queda aprobado por el usuario del token.
func (h *EmployeeHandler) AddExpense(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.ExpenseRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.AddExpense(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ExpenseReport GET /api/employees/expense-report?year=&month=&location=
func (h *EmployeeHandler) ExpenseReport(c *fiber.Ctx) error {
	var q dto.PeriodQuery
	if err := bindQuery(c, &q); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.ExpenseReport(c.UserContext(), q)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
