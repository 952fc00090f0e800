package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autoparts-api/internal/application/analytics"
	"github.com/jhoicas/autoparts-api/internal/application/dto"
)

// ReportHandler expone los reportes transversales bajo /api/reports.
type ReportHandler struct {
	uc   *analytics.ReportUseCase
	errs errorWriter
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase, errs errorWriter) *ReportHandler {
	return &ReportHandler{uc: uc, errs: errs}
}

// Dashboard godoc
// @Summary      Tablero principal
// @Description  Conteos por entidad, ventas del mes en curso y valor del stock.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        location  query  string  false  "japan | dubai"
// @Success      200  {object}  reporting.Dashboard
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), c.Query("location"))
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// ContainerProfitLoss GET /api/reports/container-profit-loss?start_date=&end_date=
func (h *ReportHandler) ContainerProfitLoss(c *fiber.Ctx) error {
	var q dto.PeriodQuery
	if err := bindQuery(c, &q); err != nil {
		return h.errs.write(c, err)
	}
	out, err := h.uc.ContainerProfitLoss(c.UserContext(), q)
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Receivables GET /api/reports/receivables
func (h *ReportHandler) Receivables(c *fiber.Ctx) error {
	out, err := h.uc.Receivables(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}

// Payables GET /api/reports/payables
func (h *ReportHandler) Payables(c *fiber.Ctx) error {
	out, err := h.uc.Payables(c.UserContext())
	if err != nil {
		return h.errs.write(c, err)
	}
	return c.JSON(out)
}
