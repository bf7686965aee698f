package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/inventario-console/internal/application/analytics"
	"github.com/tu-usuario/inventario-console/internal/application/auth"
	"github.com/tu-usuario/inventario-console/internal/application/inventory"
	"github.com/tu-usuario/inventario-console/internal/application/usecase"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
	"github.com/tu-usuario/inventario-console/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventario-console/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	LotUC          *usecase.LotUseCase
	SupplierUC     *usecase.SupplierUseCase
	ReorderRuleUC  *usecase.ReorderRuleUseCase
	RecordMovement *inventory.RecordMovementUseCase
	MovementRepo   repository.StockMovementRepository
	DashboardUC    *analytics.DashboardUseCase
	ValuationUC    *analytics.ValuationUseCase
	ReportGen      *pdf.ValuationReportGenerator
	AuthUC         *auth.AuthUseCase
	Metrics        *metrics.Metrics
	MetricsReg     *prometheus.Registry
	JWTSecret      string
	AppName        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Métricas Prometheus (público, para scrape)
	if deps.MetricsReg != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.MetricsReg, promhttp.HandlerOpts{})))
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Lots (protegido, anidado bajo producto para alta y listado)
	lotHandler := NewLotHandler(deps.LotUC)
	products.Post("/:id/lots", lotHandler.Create)
	products.Get("/:id/lots", lotHandler.ListByProduct)
	lots := protected.Group("/lots")
	lots.Put("/:id", lotHandler.Update)
	lots.Delete("/:id", lotHandler.Delete)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecordMovement, deps.MovementRepo, deps.Metrics)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Reorder rules (protegido)
	rules := protected.Group("/reorder-rules")
	ruleHandler := NewReorderRuleHandler(deps.ReorderRuleUC)
	rules.Post("/", ruleHandler.Upsert)
	rules.Get("/", ruleHandler.List)
	rules.Put("/:id", ruleHandler.Patch)
	rules.Delete("/:id", ruleHandler.Delete)

	// Dashboard y valoración (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ValuationUC, deps.ReportGen, deps.AppName)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
	protected.Get("/evaluation", dashboardHandler.GetValuation)
	protected.Get("/evaluation/report", dashboardHandler.GetValuationReport)
}
