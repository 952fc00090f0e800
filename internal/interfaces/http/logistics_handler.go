package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/application/logistics"
)

// ── Vehículos ──

// VehicleHandler CRUD y búsqueda de vehículos.
type VehicleHandler struct {
	uc   *logistics.VehicleUseCase
	errs errorWriter
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *logistics.VehicleUseCase, errs errorWriter) *VehicleHandler {
	return &VehicleHandler{uc: uc, errs: errs}
}

// Create godoc
// @Summary   Registrar vehículo
// @Tags      vehicles
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body  dto.VehicleRequest  true  "chassis_number, make, model, year, purchase_price"
// @Success   201   {object}  dto.VehicleResponse
// @Failure   400   {object}  dto.ErrorResponse
// @Failure   404   {object}  dto.ErrorResponse
// @Router    /api/vehicles [post]
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.VehicleRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	v, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

// List GET /api/vehicles?status=&location=&container_id=&page=&limit=
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	var f dto.VehicleFilter
	if err := bindQuery(c, &f); err != nil {
		return h.errs.write(c, err)
	}
	page, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(page)
}

// Search GET /api/vehicles/search?q=
func (h *VehicleHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/vehicles/:id (incluye contenedor y piezas)
func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	v, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(v)
}

// Update PUT /api/vehicles/:id
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.VehicleRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	v, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(v)
}

// Delete DELETE /api/vehicles/:id
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "vehículo eliminado"})
}

// ── Contenedores ──

// ContainerHandler CRUD de contenedores, asignación de vehículos y P/L.
type ContainerHandler struct {
	uc   *logistics.ContainerUseCase
	errs errorWriter
}

// NewContainerHandler construye el handler.
func NewContainerHandler(uc *logistics.ContainerUseCase, errs errorWriter) *ContainerHandler {
	return &ContainerHandler{uc: uc, errs: errs}
}

// Create POST /api/containers
func (h *ContainerHandler) Create(c *fiber.Ctx) error {
	var in dto.ContainerRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/containers?status=
func (h *ContainerHandler) List(c *fiber.Ctx) error {
	var f dto.ContainerFilter
	if err := bindQuery(c, &f); err != nil {
		return h.errs.write(c, err)
	}
	page, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(page)
}

// Get GET /api/containers/:id (incluye vehículos)
func (h *ContainerHandler) Get(c *fiber.Ctx) error {
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

// Update PUT /api/containers/:id
func (h *ContainerHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.ContainerRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/containers/:id
func (h *ContainerHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contenedor eliminado"})
}

// AssignVehicles godoc
// @Summary      Asignar vehículos a un contenedor
// @Description  Todo o nada: si algún vehículo no existe no se asigna ninguno.
// @Tags         containers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del contenedor"
// @Param        body  body  dto.AssignVehiclesRequest  true  "vehicle_ids"
// @Success      200   {object}  dto.AssignVehiclesResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/containers/{id}/vehicles [post]
func (h *ContainerHandler) AssignVehicles(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	var in dto.AssignVehiclesRequest
	if err := bindBody(c, &in); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.AssignVehicles(c.UserContext(), id, in)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// ProfitLoss GET /api/containers/:id/profit-loss
func (h *ContainerHandler) ProfitLoss(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return h.errs.write(c, err)
	}
	pl, err := h.uc.ProfitLoss(c.UserContext(), id)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(pl)
}
