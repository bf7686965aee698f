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
	"github.com/prometheus/client_golang/prometheus"

	appanalytics "github.com/tu-usuario/inventario-console/internal/application/analytics"
	"github.com/tu-usuario/inventario-console/internal/application/auth"
	"github.com/tu-usuario/inventario-console/internal/application/inventory"
	"github.com/tu-usuario/inventario-console/internal/application/usecase"
	infrapdf "github.com/tu-usuario/inventario-console/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventario-console/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-console/internal/interfaces/http"
	"github.com/tu-usuario/inventario-console/pkg/config"
	"github.com/tu-usuario/inventario-console/pkg/logger"
	"github.com/tu-usuario/inventario-console/pkg/metrics"
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

	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	ruleRepo := postgres.NewReorderRuleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordMovementUC := inventory.NewRecordMovementUseCase(txRunner)
	productUC := usecase.NewProductUseCase(productRepo, lotRepo, movementRepo, ruleRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	ruleUC := usecase.NewReorderRuleUseCase(ruleRepo, productRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, movementRepo)
	valuationUC := appanalytics.NewValuationUseCase(analyticsRepo, productRepo)
	reportGen := infrapdf.NewValuationReportGenerator()

	authUC := auth.NewAuthUseCase(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	metricsReg := prometheus.NewRegistry()
	appMetrics := metrics.New(metricsReg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log, appMetrics))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		LotUC:          lotUC,
		SupplierUC:     supplierUC,
		ReorderRuleUC:  ruleUC,
		RecordMovement: recordMovementUC,
		MovementRepo:   movementRepo,
		DashboardUC:    dashboardUC,
		ValuationUC:    valuationUC,
		ReportGen:      reportGen,
		AuthUC:         authUC,
		Metrics:        appMetrics,
		MetricsReg:     metricsReg,
		JWTSecret:      cfg.JWT.Secret,
		AppName:        cfg.App.Name,
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
