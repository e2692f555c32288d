package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Eventos-api/internal/application/auth"
	"github.com/jhoicas/Eventos-api/internal/application/ledger"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Eventos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Eventos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Eventos-api/internal/interfaces/http"
	"github.com/jhoicas/Eventos-api/pkg/config"
	"github.com/jhoicas/Eventos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (lecturas fuera de transacción)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	toolStockRepo := postgres.NewToolStockRepository(pool)
	materialIssuanceRepo := postgres.NewMaterialIssuanceRepository(pool)
	toolIssuanceRepo := postgres.NewToolIssuanceRepository(pool)
	toolRepo := postgres.NewToolRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	yearRepo := postgres.NewYearRepository(pool)
	costRepo := postgres.NewCostRepository(pool)
	galleryRepo := postgres.NewGalleryRepository(pool)

	// Motores del libro de inventario: uno por libro (materiales y herramientas)
	materialEngine := ledger.NewEngine(postgres.NewMaterialTxRunner(pool), stockRepo, materialIssuanceRepo)
	toolEngine := ledger.NewEngine(postgres.NewToolTxRunner(pool), toolStockRepo, toolIssuanceRepo)
	inventoryService := ledger.NewInventoryService(materialEngine, toolEngine)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := usecase.NewItemUseCase(postgres.NewCatalogTxRunner(pool), itemRepo, categoryRepo, stockRepo)
	templateUC := usecase.NewTemplateUseCase(templateRepo)
	yearUC := usecase.NewYearUseCase(yearRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	toolUC := usecase.NewToolUseCase(toolRepo, toolStockRepo)
	eventUC := usecase.NewEventUseCase(eventRepo, templateRepo, yearRepo, costRepo, galleryRepo, materialEngine, toolEngine)
	reportUC := usecase.NewReportUseCase(eventUC, itemRepo, toolRepo, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El spec se genera
	// aparte (swag init); sin el archivo el API arranca igual, solo sin UI.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Eventos API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado; Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		ItemUC:            itemUC,
		CatalogTemplates:  templateUC,
		CatalogYears:      yearUC,
		CatalogCategories: categoryUC,
		ToolUC:            toolUC,
		EventUC:           eventUC,
		ReportUC:          reportUC,
		MaterialEngine:    materialEngine,
		ToolEngine:        toolEngine,
		InventoryService:  inventoryService,
		StockReader:       stockRepo,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("servidor detenido")
}
