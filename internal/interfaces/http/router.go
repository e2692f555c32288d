package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/auth"
	"github.com/jhoicas/Eventos-api/internal/application/ledger"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	ItemUC            *usecase.ItemUseCase
	CatalogTemplates  *usecase.TemplateUseCase
	CatalogYears      *usecase.YearUseCase
	CatalogCategories *usecase.CategoryUseCase
	ToolUC            *usecase.ToolUseCase
	EventUC           *usecase.EventUseCase
	ReportUC          *usecase.ReportUseCase
	MaterialEngine    *ledger.Engine
	ToolEngine        *ledger.Engine
	InventoryService  *ledger.InventoryService
	StockReader       repository.StockReader
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireAdmin())
	users.Get("/", authHandler.ListUsers)
	users.Put("/:id", authHandler.UpdateUser)
	users.Delete("/:id", authHandler.DeleteUser)

	// Catálogos: plantillas, años, categorías
	catalogHandler := NewCatalogHandler(deps.CatalogTemplates, deps.CatalogYears, deps.CatalogCategories)
	templates := protected.Group("/event-templates")
	templates.Post("/", catalogHandler.CreateTemplate)
	templates.Get("/", catalogHandler.ListTemplates)
	templates.Put("/:id", catalogHandler.UpdateTemplate)
	templates.Delete("/:id", catalogHandler.DeleteTemplate)

	years := protected.Group("/years")
	years.Post("/", catalogHandler.CreateYear)
	years.Get("/", catalogHandler.ListYears)
	years.Put("/:id", catalogHandler.UpdateYear)
	years.Delete("/:id", catalogHandler.DeleteYear)

	categories := protected.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	// Inventario: ítems, stock, transacciones, deducción directa
	inventoryHandler := NewInventoryHandler(deps.ItemUC, deps.MaterialEngine, deps.StockReader, deps.InventoryService)
	inv := protected.Group("/inventory")
	inv.Post("/items", inventoryHandler.CreateItem)
	inv.Get("/items", inventoryHandler.ListItems)
	inv.Get("/items/:id", inventoryHandler.GetItem)
	inv.Put("/items/:id", inventoryHandler.UpdateItem)
	inv.Delete("/items/:id", inventoryHandler.DeleteItem)

	inv.Get("/stock", inventoryHandler.ListStock)
	inv.Post("/stock", inventoryHandler.CreateStock)
	inv.Get("/stock/:itemId", inventoryHandler.GetStock)

	inv.Post("/transactions", inventoryHandler.CreateTransaction)
	inv.Get("/transactions", inventoryHandler.ListTransactions)
	inv.Put("/transactions/:id", inventoryHandler.UpdateTransaction)
	inv.Delete("/transactions/:id", inventoryHandler.DeleteTransaction)

	inv.Post("/deduct-material", inventoryHandler.DeductMaterial)
	inv.Post("/deduct-tool", inventoryHandler.DeductTool)

	// Herramientas y su libro
	toolHandler := NewToolHandler(deps.ToolUC, deps.ToolEngine)
	tools := protected.Group("/tools")
	tools.Post("/transactions", toolHandler.CreateTransaction)
	tools.Get("/transactions", toolHandler.ListTransactions)
	tools.Put("/transactions/:id", toolHandler.UpdateTransaction)
	tools.Delete("/transactions/:id", toolHandler.DeleteTransaction)
	tools.Post("/", toolHandler.Create)
	tools.Get("/", toolHandler.List)
	tools.Get("/:id", toolHandler.GetByID)
	tools.Put("/:id", toolHandler.Update)
	tools.Patch("/:id/condition", toolHandler.UpdateCondition)
	tools.Delete("/:id", toolHandler.Delete)

	// Eventos: CRUD, costos, galerías, emisiones, reporte
	eventHandler := NewEventHandler(deps.EventUC, deps.ReportUC)
	events := protected.Group("/events")
	events.Put("/costs/:costId", eventHandler.UpdateCost)
	events.Delete("/costs/:costId", eventHandler.DeleteCost)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.GetDetail)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)
	events.Post("/:id/costs", eventHandler.AddCost)
	events.Post("/:id/design-images", eventHandler.AddDesignImage)
	events.Post("/:id/final-images", eventHandler.AddFinalImage)
	events.Post("/:id/issue-material", eventHandler.IssueMaterial)
	events.Post("/:id/issue-tool", eventHandler.IssueTool)
	events.Get("/:id/issuances", eventHandler.ListIssuances)
	events.Get("/:id/report", eventHandler.Report)
}
