package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/application/sales"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc   *sales.CustomerUseCase
	errs errorWriter
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *sales.CustomerUseCase, errs errorWriter) *CustomerHandler {
	return &CustomerHandler{uc: uc, errs: errs}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	customer, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers?type=&is_active=&page=&limit=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var f dto.CustomerFilter
	if err := bindQuery(c, &f); err != nil {
		return h.errs.write(c, err)
	}
	page, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(page)
}

// Search GET /api/customers/search?q=
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/customers/:id (incluye sus órdenes)
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	customer, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.CustomerRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	customer, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}

// Balance GET /api/customers/:id/balance
func (h *CustomerHandler) Balance(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	b, err := h.uc.Balance(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(b)
}
