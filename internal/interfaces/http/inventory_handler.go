package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/application/inventory"
)

// InventoryHandler piezas en stock y reportes de inventario.
type InventoryHandler struct {
	items   *inventory.ItemUseCase
	reports *inventory.StockReportUseCase
	errs    errorWriter
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(items *inventory.ItemUseCase, reports *inventory.StockReportUseCase, errs errorWriter) *InventoryHandler {
	return &InventoryHandler{items: items, reports: reports, errs: errs}
}

// Create POST /api/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryItemRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	item, err := h.items.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List GET /api/inventory?category=&status=&location=&vehicle_id=
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var f dto.InventoryFilter
	if err := bindQuery(c, &f); err != nil {
		return h.errs.write(c, err)
	}
	page, err := h.items.List(c.UserContext(), f)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(page)
}

// Search GET /api/inventory/search?q= (SKU, nombre o número de parte)
func (h *InventoryHandler) Search(c *fiber.Ctx) error {
	list, err := h.items.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(list)
}

func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	item, err := h.items.Get(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(item)
}

func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.InventoryItemRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	item, err := h.items.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(item)
}

func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.items.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pieza eliminada"})
}

// Valuation godoc
// @Summary   Valor del stock por categoría
// @Tags      inventory
// @Produce   json
// @Security  BearerAuth
// @Param     location  query  string  false  "japan | dubai"
// @Success   200  {object}  reporting.InventoryValuation
// @Router    /api/inventory/valuation [get]
func (h *InventoryHandler) Valuation(c *fiber.Ctx) error {
	v, err := h.reports.Valuation(c.UserContext(), c.Query("location"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(v)
}

// LowStock GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.reports.LowStock(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
