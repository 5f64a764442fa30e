package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
)

// FeedbackHandler maneja el envío público de opiniones y su consulta desde el MIS.
type FeedbackHandler struct {
	uc *usecase.FeedbackUseCase
}

// NewFeedbackHandler construye el handler.
func NewFeedbackHandler(uc *usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar opinión de cliente
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFeedbackRequest  true  "rating 1-5, customerName, feedback; email opcional"
// @Success      201   {object}  dto.FeedbackResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/feedback [post]
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar opiniones en orden de envío
// @Tags         feedback
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FeedbackListResponse
// @Router       /api/mis/feedback [get]
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
