package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/application/inventory"
)

// AlertHandler maneja la consulta de alertas de stock bajo por empresa.
type AlertHandler struct {
	uc *inventory.LowStockUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *inventory.LowStockUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// LowStock godoc
// @Summary      Alertas de stock bajo de una empresa
// @Description  Evalúa el snapshot de inventario contra la política de umbrales por categoría y adjunta el proveedor asociado (si hay).
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "companyId es requerido"})
	}
	out, err := h.uc.GetAlerts(c.Context(), companyID)
	if err != nil {
		// Incluye snapshots malformados: la petición completa falla en vez de
		// saltar filas en silencio. Detalle al log, mensaje fijo al cliente.
		log.Error().Err(err).Str("company_id", companyID).Msg("alertas de stock bajo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Internal server error"})
	}
	return c.JSON(out)
}
