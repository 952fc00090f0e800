package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/application/sales"
)

// OrderHandler órdenes de venta: creación con reserva de stock, pagos, estado y PDF.
type OrderHandler struct {
	uc   *sales.OrderUseCase
	errs errorWriter
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *sales.OrderUseCase, errs errorWriter) *OrderHandler {
	return &OrderHandler{uc: uc, errs: errs}
}

// Create godoc
// @Summary      Crear orden
// @Description  Reserva el stock de cada línea en una sola transacción; si alguna línea no
// @Description  tiene stock suficiente no se aplica ningún cambio.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOrderRequest  true  "customer_id, items"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/orders?status=&payment_status=&location=&customer_id=
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var f dto.OrderFilter
	if err := bindQuery(c, &f); err != nil {
		return h.errs.write(c, err)
	}
	page, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(page)
}

// MonthlySales GET /api/orders/monthly-sales?year=&month= | ?start_date=&end_date=
func (h *OrderHandler) MonthlySales(c *fiber.Ctx) error {
	var q dto.PeriodQuery
	if err := bindQuery(c, &q); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.MonthlySales(c.UserContext(), q)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Get GET /api/orders/:id (cliente, líneas con su pieza y pagos)
func (h *OrderHandler) Get(c *fiber.Ctx) error {
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

// Update PUT /api/orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.UpdateOrderRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus PATCH /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.UpdateOrderStatusRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// RecordPayment godoc
// @Summary   Registrar pago
// @Tags      orders
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path  string                    true  "ID de la orden"
// @Param     body  body  dto.RecordPaymentRequest  true  "amount, payment_method"
// @Success   201   {object}  dto.PaymentResponse
// @Failure   400   {object}  dto.ErrorResponse
// @Failure   404   {object}  dto.ErrorResponse
// @Router    /api/orders/{id}/payment [post]
func (h *OrderHandler) RecordPayment(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.RecordPaymentRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.RecordPayment(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete DELETE /api/orders/:id (solo pendientes)
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "orden eliminada"})
}

// PDF godoc
// @Summary   Confirmación de orden en PDF
// @Tags      orders
// @Produce   application/pdf
// @Security  BearerAuth
// @Param     id  path  string  true  "ID de la orden"
// @Success   200  {file}  binary
// @Failure   404  {object}  dto.ErrorResponse
// @Router    /api/orders/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	doc, number, err := h.uc.PDF(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+number+`.pdf"`)
	return c.Send(doc)
}
