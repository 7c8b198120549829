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
	"github.com/jhoicas/spra-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/spra-api/internal/infrastructure/pdf"
	"github.com/jhoicas/spra-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/spra-api/internal/interfaces/http"
	"github.com/jhoicas/spra-api/pkg/config"
	"github.com/jhoicas/spra-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Options{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	componentRepo := postgres.NewComponentRepository(pool)
	hornTypeRepo := postgres.NewHornTypeRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	configRepo := postgres.NewProductionConfigRepository(pool)
	planRepo := postgres.NewMRPPlanRepository(pool)
	invTxRepo := postgres.NewInventoryTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	componentUC := usecase.NewComponentUseCase(componentRepo)
	hornTypeUC := usecase.NewHornTypeUseCase(hornTypeRepo, componentRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, hornTypeRepo, txRunner)
	configUC := usecase.NewProductionConfigUseCase(configRepo)
	mrpUC := usecase.NewMRPUseCase(orderRepo, hornTypeRepo, componentRepo, planRepo, invTxRepo, configUC, txRunner)
	inventoryUC := usecase.NewInventoryUseCase(componentRepo, invTxRepo, txRunner)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	authUC := usecase.NewAuthUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	// PDF: hoja imprimible del plan MRP
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	exportUC := usecase.NewExportUseCase(orderRepo, planRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SPRA API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ComponentUC: componentUC,
		HornTypeUC:  hornTypeUC,
		OrderUC:     orderUC,
		ConfigUC:    configUC,
		MRPUC:       mrpUC,
		ExportUC:    exportUC,
		InventoryUC: inventoryUC,
		AnalyticsUC: analyticsUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
