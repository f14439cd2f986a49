package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/almacen-api/internal/application/dto"
	"github.com/jcastellr/almacen-api/internal/application/report"
)

// ReportHandler maneja los reportes del tablero (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DepartmentActivity godoc
// @Summary      Actividad agregada por departamento
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepartmentActivityResponse
// @Router       /api/reports/department-activity [get]
func (h *ReportHandler) DepartmentActivity(c *fiber.Ctx) error {
	rows, err := h.uc.DepartmentActivity(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromDepartmentActivity(rows))
}

// RunningStock godoc
// @Summary      Stock corriente de todos los artículos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RunningStockReportResponse
// @Router       /api/reports/running-stock [get]
func (h *ReportHandler) RunningStock(c *fiber.Ctx) error {
	rows, err := h.uc.RunningStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromRunningStockReport(rows))
}

// RunningStockPDF godoc
// @Summary      Reporte de stock corriente en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/running-stock/pdf [get]
func (h *ReportHandler) RunningStockPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.RunningStockPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
