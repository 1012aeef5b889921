package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/koajpc/backoffice-api/internal/application/auth"
	"github.com/koajpc/backoffice-api/internal/application/usecase"
	"github.com/koajpc/backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ClosingUC   *usecase.CashClosingUseCase
	KoajCodeUC  *usecase.KoajCodeUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	ClosingPDF  ClosingPDFGenerator
	Alegra      AlegraPinger
	JWTSecret   string
	Version     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público)
	healthHandler := NewHealthHandler(deps.Alegra, deps.Version)
	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/verify", AuthMiddleware(deps.JWTSecret), authHandler.Verify)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Cierre de caja (cualquier rol autenticado)
	closings := protected.Group("/cash-closings")
	closingHandler := NewCashClosingHandler(deps.ClosingUC, deps.ClosingPDF)
	closings.Post("/", closingHandler.Process)
	closings.Post("/pdf", closingHandler.ProcessPDF)

	// Parser de códigos (cualquier rol autenticado)
	skuGroup := protected.Group("/sku")
	skuHandler := NewSKUHandler()
	skuGroup.Post("/parse", skuHandler.ParseName)
	skuGroup.Post("/parse-code", skuHandler.ParseCode)
	skuGroup.Get("/barcode-guide", skuHandler.BarcodeGuide)

	// Catálogo de códigos KOAJ (lectura autenticada, escritura admin)
	koajCodes := protected.Group("/koaj-codes")
	koajCodeHandler := NewKoajCodeHandler(deps.KoajCodeUC)
	koajCodes.Get("/", koajCodeHandler.List)
	koajCodes.Post("/", adminOnly, koajCodeHandler.Create)
	koajCodes.Put("/:id", adminOnly, koajCodeHandler.Update)
	koajCodes.Delete("/:id", adminOnly, koajCodeHandler.Deactivate)

	// Analítica de inventario y ventas (solo admin)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/analytics/inventory", adminOnly, analyticsHandler.InventoryAnalysis)
	protected.Get("/sales/totals", adminOnly, analyticsHandler.SalesTotals)
	protected.Get("/sales/invoices", adminOnly, analyticsHandler.Invoices)

	// Usuarios (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Deactivate)
}
