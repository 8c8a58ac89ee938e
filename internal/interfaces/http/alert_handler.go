package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/alerts"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock.
type AlertHandler struct {
	alertUC  *alerts.AlertUseCase
	reportUC *alerts.ReportUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(alertUC *alerts.AlertUseCase, reportUC *alerts.ReportUseCase) *AlertHandler {
	return &AlertHandler{alertUC: alertUC, reportUC: reportUC}
}

// List godoc
// @Summary      Listar alertas de stock
// @Description  Clasificación en vivo de todos los productos con resumen
// @Description  agregado. El resumen se calcula antes de aplicar filtros.
// @Tags         alerts
// @Produce      json
// @Param        status        query  string  false  "out | critical | low | adequate | overstocked"
// @Param        category      query  string  false  "Categoría del producto (sin acentos)"
// @Param        acknowledged  query  bool    false  "Filtrar por reconocidas"
// @Success      200  {object}  dto.AlertListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	var filters dto.AlertFilters
	if err := c.QueryParser(&filters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.alertUC.ListAlerts(c.Context(), filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ApplyAction godoc
// @Summary      Aplicar acción sobre la alerta de un producto
// @Description  Acciones: acknowledge, unacknowledge, dismiss, undismiss,
// @Description  update_notes. Idempotentes; la fila de seguimiento se crea
// @Description  de forma perezosa en la primera acción.
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        productID  path  string                  true  "ID del producto"
// @Param        body       body  dto.AlertActionRequest  true  "Acción a aplicar"
// @Success      200  {object}  dto.StockAlertResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{productID}/actions [post]
func (h *AlertHandler) ApplyAction(c *fiber.Ctx) error {
	productID := c.Params("productID")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productID es requerido"})
	}
	var in dto.AlertActionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.alertUC.ApplyAction(c.Context(), productID, in.Action, in.Notes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// ReplenishmentReport godoc
// @Summary      Descargar reporte de reposición sugerida (PDF)
// @Tags         alerts
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/alerts/replenishment-report [get]
func (h *AlertHandler) ReplenishmentReport(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.ReplenishmentReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reposicion-sugerida.pdf"`)
	return c.Send(pdfBytes)
}
