package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/spra-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ComponentUC *usecase.ComponentUseCase
	HornTypeUC  *usecase.HornTypeUseCase
	OrderUC     *usecase.OrderUseCase
	ConfigUC    *usecase.ProductionConfigUseCase
	MRPUC       *usecase.MRPUseCase
	ExportUC    *usecase.ExportUseCase
	InventoryUC *usecase.InventoryUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	AuthUC      *usecase.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Lectura para cualquier usuario
// autenticado, mutaciones para operator+, eliminaciones solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	operator := RequireOperator()
	admin := RequireAdmin()

	// Components (protegido)
	components := protected.Group("/components")
	componentHandler := NewComponentHandler(deps.ComponentUC)
	components.Get("/", componentHandler.List)
	components.Get("/:id", componentHandler.GetByID)
	components.Post("/", operator, componentHandler.Create)
	components.Put("/:id", operator, componentHandler.Update)
	components.Delete("/:id", admin, componentHandler.Delete)

	// Horn types + BOM (protegido)
	hornTypes := protected.Group("/horn-types")
	hornTypeHandler := NewHornTypeHandler(deps.HornTypeUC)
	hornTypes.Get("/", hornTypeHandler.List)
	hornTypes.Get("/:id", hornTypeHandler.GetByID)
	hornTypes.Post("/", operator, hornTypeHandler.Create)
	hornTypes.Put("/:id", operator, hornTypeHandler.Update)
	hornTypes.Delete("/:id", admin, hornTypeHandler.Delete)
	hornTypes.Post("/:id/components", operator, hornTypeHandler.AddBOMEntry)
	hornTypes.Put("/:id/components/:componentID", operator, hornTypeHandler.UpdateBOMEntry)
	hornTypes.Delete("/:id/components/:componentID", operator, hornTypeHandler.RemoveBOMEntry)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/", operator, orderHandler.Create)
	orders.Put("/:id", operator, orderHandler.Update)
	orders.Delete("/:id", admin, orderHandler.Delete)

	// Production config (protegido)
	configHandler := NewConfigHandler(deps.ConfigUC)
	protected.Get("/production-config", configHandler.Get)
	protected.Put("/production-config", operator, configHandler.Update)

	// MRP (protegido)
	mrpGroup := protected.Group("/mrp")
	mrpHandler := NewMRPHandler(deps.MRPUC, deps.ExportUC)
	mrpGroup.Post("/generate/:orderID", operator, mrpHandler.Generate)
	mrpGroup.Get("/order/:orderID", mrpHandler.ListByOrder)
	mrpGroup.Get("/order/:orderID/export/csv", mrpHandler.ExportCSV)
	mrpGroup.Get("/order/:orderID/export/pdf", mrpHandler.ExportPDF)
	mrpGroup.Put("/:planID/status", operator, mrpHandler.UpdateStatus)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/adjust", operator, inventoryHandler.Adjust)
	invGroup.Get("/transactions", inventoryHandler.ListTransactions)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
}
