package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
)

// PromotionHandler maneja el constructor de promociones y los puntos de lealtad.
type PromotionHandler struct {
	uc *usecase.PromotionUseCase
}

// NewPromotionHandler construye el handler.
func NewPromotionHandler(uc *usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

// Toggle godoc
// @Summary      Alternar un valor de la selección (days, items, outlets)
// @Tags         promotions
// @Security     Bearer
// @Param        body  body  dto.ToggleRequest  true  "selección actual, campo y valor"
// @Success      200   {object}  dto.SelectionDTO
// @Router       /api/mis/promotions/toggle [post]
func (h *PromotionHandler) Toggle(c *fiber.Ctx) error {
	var in dto.ToggleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Toggle(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar promoción completa
// @Tags         promotions
// @Security     Bearer
// @Success      200   {object}  dto.PromotionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/mis/promotions/validate [post]
func (h *PromotionHandler) Validate(c *fiber.Ctx) error {
	var in dto.PromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Validate(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LoyaltyPoints godoc
// @Summary      Puntos de lealtad de una compra
// @Tags         menu
// @Param        amount  query  string  true  "monto de la compra"
// @Param        tier    query  string  false "bronze | silver | gold | platinum"
// @Success      200  {object}  dto.LoyaltyResponse
// @Router       /api/menu/loyalty-points [get]
func (h *PromotionHandler) LoyaltyPoints(c *fiber.Ctx) error {
	return c.JSON(h.uc.LoyaltyPoints(c.Query("amount"), c.Query("tier", "bronze")))
}
