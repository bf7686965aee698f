package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-console/internal/application/analytics"
	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/infrastructure/pdf"
)

// DashboardHandler maneja las peticiones del panel y la valoración (protegido).
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
	valuationUC *analytics.ValuationUseCase
	reportGen   *pdf.ValuationReportGenerator
	appName     string
}

func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase, valuationUC *analytics.ValuationUseCase, reportGen *pdf.ValuationReportGenerator, appName string) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		valuationUC: valuationUC,
		reportGen:   reportGen,
		appName:     appName,
	}
}

// GetSummary godoc
// @Summary      Resumen del panel
// @Description  Totales del inventario, productos bajo umbral y movimientos recientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.dashboardUC.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// GetValuation godoc
// @Summary      Valoración del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        mode  query  string  false  "Modo de valoración"  default(current)
// @Success      200  {object}  dto.ValuationDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/evaluation [get]
func (h *DashboardHandler) GetValuation(c *fiber.Ctx) error {
	valuation, err := h.valuationUC.GetValuation(c.Context(), c.Query("mode"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "modo de valoración no soportado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(valuation)
}

// GetValuationReport godoc
// @Summary      Reporte de valoración en PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/evaluation/report [get]
func (h *DashboardHandler) GetValuationReport(c *fiber.Ctx) error {
	products, err := h.valuationUC.ListProductsForReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	document, err := h.reportGen.Generate(h.appName, products, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="valoracion-inventario.pdf"`)
	return c.Send(document)
}
