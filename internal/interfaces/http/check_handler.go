package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
)

// CheckHandler maneja los controles de calidad en recepción.
type CheckHandler struct {
	uc *usecase.CheckUseCase
}

// NewCheckHandler construye el handler.
func NewCheckHandler(uc *usecase.CheckUseCase) *CheckHandler {
	return &CheckHandler{uc: uc}
}

// Evaluate devuelve el resultado de cada línea sin bloquear por pendientes.
// @Router       /api/mis/checks/evaluate [post]
func (h *CheckHandler) Evaluate(c *fiber.Ctx) error {
	var in dto.CheckRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.Evaluate(in))
}

// Submit rechaza con 422 mientras quede alguna línea pendiente.
// @Router       /api/mis/checks/submit [post]
func (h *CheckHandler) Submit(c *fiber.Ctx) error {
	var in dto.CheckRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Submit(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
