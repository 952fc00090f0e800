package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/application/finance"
)

// ── Inmuebles ──

// PropertyHandler inmuebles propios o arrendados y su reporte de ingresos.
type PropertyHandler struct {
	uc   *finance.PropertyUseCase
	errs errorWriter
}

// NewPropertyHandler construye el handler.
func NewPropertyHandler(uc *finance.PropertyUseCase, errs errorWriter) *PropertyHandler {
	return &PropertyHandler{uc: uc, errs: errs}
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in dto.PropertyRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	var f dto.PropertyFilter
	if err := bindQuery(c, &f); err != nil {
		return h.errs.write(c, err)
	}
	page, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(page)
}

// IncomeReport GET /api/properties/income-report?year=&month=&location=
func (h *PropertyHandler) IncomeReport(c *fiber.Ctx) error {
	var q dto.PeriodQuery
	if err := bindQuery(c, &q); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.IncomeReport(c.UserContext(), q)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Get GET /api/properties/:id (incluye transacciones)
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
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

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.PropertyRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "inmueble eliminado"})
}

// ── Transacciones ──

// TransactionHandler libro de ingresos y egresos y sus reportes.
type TransactionHandler struct {
	uc   *finance.TransactionUseCase
	errs errorWriter
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *finance.TransactionUseCase, errs errorWriter) *TransactionHandler {
	return &TransactionHandler{uc: uc, errs: errs}
}

// Create godoc
// @Summary      Registrar transacción
// @Description  amount_usd = amount × exchange_rate; el número TXN-AAMMDD-NNNN se reintenta ante colisión.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.TransactionRequest  true  "type, category, amount"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/transactions?type=&category=&location=&status=&start_date=&end_date=
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var f dto.TransactionFilter
	if err := bindQuery(c, &f); err != nil {
		return h.errs.write(c, err)
	}
	page, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(page)
}

// Summary GET /api/transactions/summary?year=&month=&location=
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	var q dto.PeriodQuery
	if err := bindQuery(c, &q); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Summary(c.UserContext(), q)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// CashFlow GET /api/transactions/cash-flow?year=&location=
func (h *TransactionHandler) CashFlow(c *fiber.Ctx) error {
	var q dto.YearQuery
	if err := bindQuery(c, &q); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.CashFlow(c.UserContext(), q)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Balances GET /api/transactions/balances
func (h *TransactionHandler) Balances(c *fiber.Ctx) error {
	out, err := h.uc.Balances(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
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

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.TransactionRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "transacción eliminada"})
}
