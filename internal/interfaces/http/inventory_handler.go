package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/inventory"
	"github.com/jhoicas/restaurante-mis/pkg/jwt"
)

// InventoryHandler maneja el tablero de stock y la recepción de mercadería (protegido).
type InventoryHandler struct {
	stock  *inventory.StockUseCase
	inward *inventory.InwardUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *inventory.StockUseCase, inward *inventory.InwardUseCase) *InventoryHandler {
	return &InventoryHandler{stock: stock, inward: inward}
}

// Dashboard godoc
// @Summary      Tablero de inventario
// @Description  El rol staff solo ve su propio outlet; admin y manager pueden omitir outlet_id para ver todos.
// @Tags         inventory
// @Security     Bearer
// @Param        outlet_id  query  string  false  "Outlet"
// @Success      200  {object}  dto.StockDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mis/inventory [get]
func (h *InventoryHandler) Dashboard(c *fiber.Ctx) error {
	outletID := c.Query("outlet_id")
	if GetRole(c) == jwt.RoleStaff {
		own := GetOutletID(c)
		if outletID == "" {
			outletID = own
		}
		if outletID != own {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar su outlet"})
		}
	}
	out, err := h.stock.Dashboard(c.UserContext(), outletID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Classify godoc
// @Summary      Clasificar nivel de stock
// @Tags         inventory
// @Security     Bearer
// @Param        body  body  dto.ClassifyRequest  true  "current, min, max"
// @Success      200   {object}  dto.ClassifyResponse
// @Router       /api/mis/inventory/classify [post]
func (h *InventoryHandler) Classify(c *fiber.Ctx) error {
	var in dto.ClassifyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.stock.Classify(in))
}

// Reconcile godoc
// @Summary      Estado de recepción por línea y global
// @Tags         inventory
// @Security     Bearer
// @Success      200   {object}  dto.InwardResponse
// @Router       /api/mis/inventory/inward/reconcile [post]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.InwardRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.inward.Reconcile(in))
}

// Receive godoc
// @Summary      Aplicar recepción al stock
// @Tags         inventory
// @Security     Bearer
// @Success      200   {object}  dto.ReceiveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/mis/inventory/inward/receive [post]
func (h *InventoryHandler) Receive(c *fiber.Ctx) error {
	var in dto.InwardRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.inward.Receive(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
