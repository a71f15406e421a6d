package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Atelie-api/internal/application/dto"
	"github.com/jhoicas/Atelie-api/internal/application/usecase"
	"github.com/jhoicas/Atelie-api/internal/domain/costing"
	apphttp "github.com/jhoicas/Atelie-api/internal/interfaces/http"
	"github.com/jhoicas/Atelie-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func buildTestApp() *fiber.App {
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		PricingUC: usecase.NewPricingUseCase(costing.DefaultParams(), log),
		ReportsUC: usecase.NewReportsUseCase(costing.DefaultParams(), 5, log).WithClock(func() time.Time { return testNow }),
		StockUC:   usecase.NewStockUseCase(log),
		Log:       log,
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeJSON(t *testing.T, raw []byte, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out), string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pricing
// ──────────────────────────────────────────────────────────────────────────────

func TestSuggestedPrice_OK(t *testing.T) {
	app := buildTestApp()
	body := `{"product":{"labor_time":60,"profit_margin":50,"materials":[
		{"material_id":"m1","quantity":1,"unit":"m","material":{"id":"m1","unit":"m","cost":100}}]}}`

	resp, raw := do(t, app, http.MethodPost, "/api/pricing/suggested-price", body)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var out dto.PriceCalculationResponse
	decodeJSON(t, raw, &out)
	assert.Equal(t, "120", out.BaseCost.String())
	assert.Equal(t, "240", out.SuggestedPrice.String())
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestSuggestedPrice_ValidacionFalla(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/pricing/suggested-price", `{"product":{"labor_time":-5}}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	assert.Equal(t, "VALIDATION_ERROR", out.Code)
	assert.Equal(t, "gte", out.Fields["SuggestedPriceRequest.Product.LaborTime"])
}

func TestRutaInexistente(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/pricing/unknown", `{}`)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestSuggestedPrice_TarifaNegativaRechazada(t *testing.T) {
	app := buildTestApp()
	body := `{"product":{"labor_time":60,"profit_margin":50},"costing":{"hourly_rate":-20,"fixed_costs":[{"value":-160}]}}`

	resp, raw := do(t, app, http.MethodPost, "/api/pricing/suggested-price", body)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	assert.Equal(t, "VALIDATION_ERROR", out.Code)
	assert.Equal(t, "gte", out.Fields["SuggestedPriceRequest.Costing.HourlyRate"])
}

func TestSuggestedPrice_CostoFijoNegativoSeIgnora(t *testing.T) {
	app := buildTestApp()
	body := `{"product":{"labor_time":60,"profit_margin":0},"costing":{"fixed_costs":[{"value":-160}]}}`

	resp, raw := do(t, app, http.MethodPost, "/api/pricing/suggested-price", body)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var out dto.PriceCalculationResponse
	decodeJSON(t, raw, &out)
	assert.True(t, out.FixedCost.IsZero())
	assert.Equal(t, "20", out.SuggestedPrice.String())
}

func TestSuggestedPrice_JSONInvalido(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/pricing/suggested-price", `{"product":`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	assert.Equal(t, "INVALID_BODY", out.Code)
}

func TestContributionMargin_PrecioCero(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/pricing/contribution-margin", `{"price":0,"variable_cost":30}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ContributionMarginResponse
	decodeJSON(t, raw, &out)
	assert.True(t, out.ContributionMarginPercentage.IsZero())
}

func TestOrderTotal_NuncaNegativo(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/orders/total", `{"items":[{"price":10,"quantity":1}],"order_discount":20}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var out dto.OrderTotalResponse
	decodeJSON(t, raw, &out)
	assert.True(t, out.Total.IsZero())
	assert.Equal(t, "10", out.ItemsTotal.String())
}

func TestOrderTotal_CantidadInvalida(t *testing.T) {
	app := buildTestApp()

	resp, _ := do(t, app, http.MethodPost, "/api/orders/total", `{"items":[{"price":10,"quantity":0}]}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reports / analytics
// ──────────────────────────────────────────────────────────────────────────────

const ordersBody = `{"orders":[
	{"id":"1","status":"PENDING","total_value":100,"created_at":"2026-03-14T10:00:00Z","items":[{"product_id":"a","quantity":2,"price":50,"product":{"name":"Product A"}}]},
	{"id":"2","status":"DELIVERED","total_value":200,"created_at":"2026-01-05T10:00:00Z","items":[{"product_id":"b","quantity":1,"price":200,"product":{"name":"Product B"}}]},
	{"id":"3","status":"PENDING","total_value":50,"created_at":"2026-03-15T11:00:00Z","items":[{"product_id":"a","quantity":1,"price":50,"product":{"name":"Product A"}}]}
]}`

func TestFinancialSummary_Vacio(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/reports/financial-summary", `{"orders":[]}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.FinancialSummaryResponse
	decodeJSON(t, raw, &out)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.True(t, out.ProfitMargin.IsZero())
}

func TestRevenueByPeriod(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/reports/revenue-by-period", ordersBody)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out []dto.PeriodSummaryDTO
	decodeJSON(t, raw, &out)
	require.Len(t, out, 2)
	assert.Equal(t, "2026-01", out[0].Period)
	assert.Equal(t, "150", out[1].Revenue.String())
}

func TestOrdersByStatus(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/analytics/orders-by-status", ordersBody)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out []dto.StatusBreakdownDTO
	decodeJSON(t, raw, &out)
	require.Len(t, out, 2)
	assert.Equal(t, "PENDING", out[0].Status)
	assert.Equal(t, 2, out[0].Count)
	assert.Equal(t, "150", out[0].Value.String())
	assert.Equal(t, "DELIVERED", out[1].Status)
	assert.Equal(t, "200", out[1].Value.String())
}

func TestTopProducts_Limite(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/analytics/top-products?limit=1", ordersBody)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out []dto.TopProductDTO
	decodeJSON(t, raw, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "Product B", out[0].Name)
}

func TestDashboard(t *testing.T) {
	app := buildTestApp()
	body := `{"orders":[{"status":"PENDING","total_value":100},{"status":"DELIVERED","total_value":200}],
		"materials":[{"id":"m1","quantity":5,"min_quantity":10},{"id":"m2","quantity":20,"min_quantity":10},{"id":"m3","quantity":0,"min_quantity":5}]}`

	resp, raw := do(t, app, http.MethodPost, "/api/analytics/dashboard", body)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var out dto.DashboardMetricsDTO
	decodeJSON(t, raw, &out)
	assert.Equal(t, 2, out.LowStockItems)
	assert.Equal(t, 1, out.ActiveOrders)
	assert.Equal(t, 1, out.CompletedOrders)
	assert.Equal(t, "300", out.TotalRevenue.String())
}

func TestDateRange(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodGet, "/api/analytics/date-range/today", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.DateRangeResponse
	decodeJSON(t, raw, &out)
	assert.True(t, out.Start.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, out.End.Equal(testNow))

	resp, raw = do(t, app, http.MethodGet, "/api/analytics/date-range/decade", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var errOut dto.ErrorResponse
	decodeJSON(t, raw, &errOut)
	assert.Equal(t, "UNKNOWN_PRESET", errOut.Code)
}

func TestFilterOrders(t *testing.T) {
	app := buildTestApp()
	body := `{"preset":"week","orders":[
		{"id":"1","status":"PENDING","created_at":"2026-03-14T10:00:00Z"},
		{"id":"2","status":"PENDING","created_at":"2026-01-05T10:00:00Z"}]}`

	resp, raw := do(t, app, http.MethodPost, "/api/analytics/orders/filter", body)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var out dto.FilterOrdersResponse
	decodeJSON(t, raw, &out)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "1", out.Orders[0].ID)
}

func TestFilterOrders_RangoInvertido(t *testing.T) {
	app := buildTestApp()
	body := `{"start_date":"2026-03-10T00:00:00Z","end_date":"2026-03-01T00:00:00Z","orders":[]}`

	resp, raw := do(t, app, http.MethodPost, "/api/analytics/orders/filter", body)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	assert.Equal(t, "INVALID_RANGE", out.Code)
}

func TestFilterOrders_PresetInvalido(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/analytics/orders/filter", `{"preset":"semana","orders":[]}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	assert.Equal(t, "oneof", out.Fields["FilterOrdersRequest.Preset"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStockReport(t *testing.T) {
	app := buildTestApp()
	body := `{"movements":[
		{"material_id":"m1","type":"ENTRADA","quantity":10},
		{"material_id":"m1","type":"SAIDA","quantity":12},
		{"material_id":"m1","type":"ENTRADA","quantity":4,"color":"Azul"}]}`

	resp, raw := do(t, app, http.MethodPost, "/api/stock/report", body)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var out dto.StockReportResponse
	decodeJSON(t, raw, &out)
	require.Len(t, out.Balances, 2)
	assert.Nil(t, out.Balances[0].Color)
	assert.Equal(t, "-2", out.Balances[0].Balance.String())
	require.NotNil(t, out.Balances[1].Color)
	assert.Equal(t, "Azul", *out.Balances[1].Color)
}

func TestStockReport_MovimientoSinMaterial(t *testing.T) {
	app := buildTestApp()

	resp, raw := do(t, app, http.MethodPost, "/api/stock/report", `{"movements":[{"type":"ENTRADA","quantity":1}]}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	var out dto.ErrorResponse
	decodeJSON(t, raw, &out)
	assert.Equal(t, "required", out.Fields["StockRequest.Movements[0].MaterialID"])
}

func TestStockAlerts(t *testing.T) {
	app := buildTestApp()
	body := `{"materials":[{"id":"m1","name":"Linha","unit":"un","min_quantity":10}],
		"movements":[{"material_id":"m1","type":"ENTRADA","quantity":4}]}`

	resp, raw := do(t, app, http.MethodPost, "/api/stock/alerts", body)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var out dto.StockAlertsResponse
	decodeJSON(t, raw, &out)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "high", out.Alerts[0].Severity)
	assert.Equal(t, "m1|DEFAULT", out.Alerts[0].ID)
}
