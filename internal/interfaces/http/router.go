package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-mis/internal/application/analytics"
	"github.com/jhoicas/restaurante-mis/internal/application/inventory"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
	"github.com/jhoicas/restaurante-mis/internal/interfaces/ws"
	"github.com/jhoicas/restaurante-mis/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FeedbackUC  *usecase.FeedbackUseCase
	DocumentUC  *usecase.DocumentUseCase
	CheckUC     *usecase.CheckUseCase
	PromotionUC *usecase.PromotionUseCase
	StockUC     *inventory.StockUseCase
	InwardUC    *inventory.InwardUseCase
	DigestUC    *analytics.StockDigestUseCase
	Hub         *ws.Hub // nil = sin feed en vivo
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	feedbackHandler := NewFeedbackHandler(deps.FeedbackUC)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	promotionHandler := NewPromotionHandler(deps.PromotionUC)
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.InwardUC)
	checkHandler := NewCheckHandler(deps.CheckUC)
	reportHandler := NewReportHandler(deps.DigestUC)

	api := app.Group("/api")

	// Flujo del cliente (público)
	api.Get("/menu/loyalty-points", promotionHandler.LoyaltyPoints)
	api.Post("/orders/quote", documentHandler.QuoteOrder)
	api.Post("/feedback", feedbackHandler.Create)

	// MIS (requiere Bearer Token)
	anyStaff := RequireRole(jwt.RoleAdmin, jwt.RoleManager, jwt.RoleStaff)
	managers := RequireRole(jwt.RoleAdmin, jwt.RoleManager)
	mis := api.Group("/mis", AuthMiddleware(deps.JWTSecret))

	inv := mis.Group("/inventory")
	inv.Get("/", anyStaff, inventoryHandler.Dashboard)
	inv.Post("/classify", anyStaff, inventoryHandler.Classify)
	inv.Post("/inward/reconcile", anyStaff, inventoryHandler.Reconcile)
	inv.Post("/inward/receive", managers, inventoryHandler.Receive)

	checks := mis.Group("/checks", anyStaff)
	checks.Post("/evaluate", checkHandler.Evaluate)
	checks.Post("/submit", checkHandler.Submit)

	docs := mis.Group("/documents/:kind", anyStaff)
	docs.Post("/quote", documentHandler.Quote)
	docs.Post("/submit", documentHandler.Submit)
	docs.Post("/pdf", documentHandler.PDF)

	promos := mis.Group("/promotions", managers)
	promos.Post("/toggle", promotionHandler.Toggle)
	promos.Post("/validate", promotionHandler.Validate)

	mis.Get("/feedback", managers, feedbackHandler.List)
	mis.Get("/reports/stock-digest", managers, reportHandler.StockDigest)

	// Feed en vivo de opiniones. Los navegadores no envían headers en el upgrade,
	// así que el token llega como ?token=.
	if deps.Hub != nil {
		app.Get("/ws/feedback",
			ws.Upgrade(),
			tokenFromQuery,
			AuthMiddleware(deps.JWTSecret),
			managers,
			deps.Hub.Handler(),
		)
	}
}

func tokenFromQuery(c *fiber.Ctx) error {
	if c.Get(fiber.HeaderAuthorization) == "" {
		if tok := c.Query("token"); tok != "" {
			c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
		}
	}
	return c.Next()
}
