package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdersRequest conjunto de pedidos a resumir.
type OrdersRequest struct {
	Orders  []OrderDTO        `json:"orders" validate:"dive"`
	Costing *CostingParamsDTO `json:"costing"`
}

// DashboardRequest entrada de POST /api/analytics/dashboard.
type DashboardRequest struct {
	Orders    []OrderDTO        `json:"orders" validate:"dive"`
	Materials []MaterialDTO     `json:"materials" validate:"dive"`
	Costing   *CostingParamsDTO `json:"costing"`
}

// FilterOrdersRequest filtra por preset (today, week, month, quarter, year) o por rango explícito.
type FilterOrdersRequest struct {
	Orders    []OrderDTO `json:"orders" validate:"dive"`
	Preset    string     `json:"preset" validate:"omitempty,oneof=today week month quarter year"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// FinancialSummaryResponse totales financieros.
type FinancialSummaryResponse struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalCosts        decimal.Decimal `json:"total_costs"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	TotalMaterialCost decimal.Decimal `json:"total_material_cost"`
	TotalLaborCost    decimal.Decimal `json:"total_labor_cost"`
	TotalFixedCost    decimal.Decimal `json:"total_fixed_cost"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
}

// PeriodSummaryDTO totales de un mes (YYYY-MM).
type PeriodSummaryDTO struct {
	Period  string          `json:"period"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
	Costs   decimal.Decimal `json:"costs"`
	Profit  decimal.Decimal `json:"profit"`
}

// StatusBreakdownDTO cantidad y valor por estado.
type StatusBreakdownDTO struct {
	Status string          `json:"status"`
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Value  decimal.Decimal `json:"value"`
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// DashboardMetricsDTO indicadores del dashboard.
type DashboardMetricsDTO struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalCosts      decimal.Decimal `json:"total_costs"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	ProfitMargin    decimal.Decimal `json:"profit_margin"`
	ActiveOrders    int             `json:"active_orders"`
	CompletedOrders int             `json:"completed_orders"`
	PendingOrders   int             `json:"pending_orders"`
	LowStockItems   int             `json:"low_stock_items"`
}

// DateRangeResponse intervalo resuelto de un preset.
type DateRangeResponse struct {
	Preset string    `json:"preset,omitempty"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// FilterOrdersResponse pedidos dentro del intervalo.
type FilterOrdersResponse struct {
	Range  DateRangeResponse `json:"range"`
	Count  int               `json:"count"`
	Orders []OrderDTO        `json:"orders"`
}
