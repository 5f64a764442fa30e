package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

// DocumentHandler maneja cotización, envío y PDF de compras, mermas, despachos y pedidos.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Quote godoc
// @Summary      Recalcular totales de un documento
// @Tags         documents
// @Security     Bearer
// @Param        kind  path  string  true  "purchase | wastage | dispatch | order"
// @Param        body  body  dto.DocumentRequest  true  "cabecera y filas"
// @Success      200   {object}  dto.DocumentResponse
// @Router       /api/mis/documents/{kind}/quote [post]
func (h *DocumentHandler) Quote(c *fiber.Ctx) error {
	var in dto.DocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Quote(c.Params("kind"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// QuoteOrder cotiza un pedido del menú público.
// @Router       /api/orders/quote [post]
func (h *DocumentHandler) QuoteOrder(c *fiber.Ctx) error {
	var in dto.DocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Quote(entity.DocumentOrder, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar documento
// @Tags         documents
// @Security     Bearer
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/mis/documents/{kind}/submit [post]
func (h *DocumentHandler) Submit(c *fiber.Ctx) error {
	var in dto.DocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), c.Params("kind"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF godoc
// @Summary      Documento en PDF
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Router       /api/mis/documents/{kind}/pdf [post]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	var in dto.DocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pdf, filename, err := h.uc.RenderPDF(c.UserContext(), c.Params("kind"), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
