package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-mis/internal/application/analytics"
)

// ReportHandler expone el resumen de stock por outlet.
type ReportHandler struct {
	digest *analytics.StockDigestUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(digest *analytics.StockDigestUseCase) *ReportHandler {
	return &ReportHandler{digest: digest}
}

// StockDigest godoc
// @Summary      Resumen de stock por outlet
// @Tags         reports
// @Security     Bearer
// @Success      200  {object}  dto.StockDigestResponse
// @Router       /api/mis/reports/stock-digest [get]
func (h *ReportHandler) StockDigest(c *fiber.Ctx) error {
	out, err := h.digest.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
