package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Atelie-api/internal/application/usecase"
	"github.com/jhoicas/Atelie-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PricingUC *usecase.PricingUseCase
	ReportsUC *usecase.ReportsUseCase
	StockUC   *usecase.StockUseCase
	Log       *logger.Logger
}

// Router registra las rutas de la API. Todas las rutas son sin estado: cada petición
// trae los registros sobre los que se calcula.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(RequestLogger(deps.Log.Component("http")))

	api := app.Group("/api")

	pricingHandler := NewPricingHandler(deps.PricingUC)
	pricing := api.Group("/pricing")
	pricing.Post("/suggested-price", pricingHandler.SuggestedPrice)
	pricing.Post("/contribution-margin", pricingHandler.ContributionMargin)
	api.Post("/orders/total", pricingHandler.OrderTotal)

	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reports := api.Group("/reports")
	reports.Post("/financial-summary", reportsHandler.FinancialSummary)
	reports.Post("/revenue-by-period", reportsHandler.RevenueByPeriod)

	analytics := api.Group("/analytics")
	analytics.Post("/dashboard", reportsHandler.Dashboard)
	analytics.Post("/orders-by-status", reportsHandler.OrdersByStatus)
	analytics.Post("/top-products", reportsHandler.TopProducts)
	analytics.Post("/orders/filter", reportsHandler.FilterOrders)
	analytics.Get("/date-range/:preset", reportsHandler.DateRange)

	stockHandler := NewStockHandler(deps.StockUC)
	stock := api.Group("/stock")
	stock.Post("/report", stockHandler.Report)
	stock.Post("/alerts", stockHandler.Alerts)
}
