package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jhoicas/Atelie-api/internal/application/dto"
	"github.com/jhoicas/Atelie-api/internal/domain"
	"github.com/jhoicas/Atelie-api/internal/domain/analytics"
	"github.com/jhoicas/Atelie-api/internal/domain/costing"
	"github.com/jhoicas/Atelie-api/internal/domain/entity"
	"github.com/jhoicas/Atelie-api/internal/domain/finance"
	"github.com/jhoicas/Atelie-api/internal/domain/money"
	"github.com/jhoicas/Atelie-api/pkg/logger"
	"github.com/jhoicas/Atelie-api/pkg/validators"
)

// MaxTopProducts tope del ranking de productos por petición.
const MaxTopProducts = 50

// ReportsUseCase resumen financiero y métricas de analítica sobre pedidos ya cargados.
type ReportsUseCase struct {
	defaults    costing.Params
	topProducts int
	log         *logger.Logger
	now         func() time.Time
}

// NewReportsUseCase construye el caso de uso. topProducts <= 0 usa el valor por defecto del motor.
func NewReportsUseCase(defaults costing.Params, topProducts int, log *logger.Logger) *ReportsUseCase {
	if topProducts <= 0 {
		topProducts = analytics.DefaultTopProducts
	}
	return &ReportsUseCase{defaults: defaults, topProducts: topProducts, log: log.Component("reports"), now: time.Now}
}

// WithClock fija el reloj usado por los presets de fecha (tests).
func (uc *ReportsUseCase) WithClock(now func() time.Time) *ReportsUseCase {
	uc.now = now
	return uc
}

// FinancialSummary ingresos, costos por componente, ganancia y margen.
func (uc *ReportsUseCase) FinancialSummary(ctx context.Context, in dto.OrdersRequest) (*dto.FinancialSummaryResponse, error) {
	_, span := startSpan(ctx, "reports.financial_summary", attribute.Int("orders", len(in.Orders)))
	defer span.End()

	start := time.Now()
	orders := toOrders(in.Orders)
	s := finance.Summarize(orders, paramsFor(uc.defaults, in.Costing))
	uc.warnMissingProducts(orders)
	uc.log.Debug().Int("orders", len(orders)).Dur("elapsed", time.Since(start)).Msg("resumen financiero")

	return &dto.FinancialSummaryResponse{
		TotalRevenue:      money.RoundDisplay(s.TotalRevenue),
		TotalCosts:        money.RoundDisplay(s.TotalCosts),
		TotalProfit:       money.RoundDisplay(s.TotalProfit),
		TotalMaterialCost: money.RoundDisplay(s.TotalMaterialCost),
		TotalLaborCost:    money.RoundDisplay(s.TotalLaborCost),
		TotalFixedCost:    money.RoundDisplay(s.TotalFixedCost),
		ProfitMargin:      money.RoundDisplay(finance.ProfitMargin(s)),
	}, nil
}

// RevenueByPeriod totales por mes de creación, ascendente.
func (uc *ReportsUseCase) RevenueByPeriod(ctx context.Context, in dto.OrdersRequest) ([]dto.PeriodSummaryDTO, error) {
	_, span := startSpan(ctx, "reports.revenue_by_period", attribute.Int("orders", len(in.Orders)))
	defer span.End()

	periods := finance.RevenueByPeriod(toOrders(in.Orders), paramsFor(uc.defaults, in.Costing))
	out := make([]dto.PeriodSummaryDTO, 0, len(periods))
	for _, p := range periods {
		out = append(out, dto.PeriodSummaryDTO{
			Period:  p.Period,
			Orders:  p.Orders,
			Revenue: money.RoundDisplay(p.Revenue),
			Costs:   money.RoundDisplay(p.Costs),
			Profit:  money.RoundDisplay(p.Profit),
		})
	}
	return out, nil
}

// Dashboard indicadores del dashboard.
func (uc *ReportsUseCase) Dashboard(ctx context.Context, in dto.DashboardRequest) (*dto.DashboardMetricsDTO, error) {
	_, span := startSpan(ctx, "reports.dashboard",
		attribute.Int("orders", len(in.Orders)),
		attribute.Int("materials", len(in.Materials)))
	defer span.End()

	orders := toOrders(in.Orders)
	m := analytics.DashboardMetrics(orders, toMaterials(in.Materials), paramsFor(uc.defaults, in.Costing))
	uc.warnMissingProducts(orders)

	return &dto.DashboardMetricsDTO{
		TotalRevenue:    money.RoundDisplay(m.TotalRevenue),
		TotalCosts:      money.RoundDisplay(m.TotalCosts),
		TotalProfit:     money.RoundDisplay(m.TotalProfit),
		ProfitMargin:    money.RoundDisplay(m.ProfitMargin),
		ActiveOrders:    m.ActiveOrders,
		CompletedOrders: m.CompletedOrders,
		PendingOrders:   m.PendingOrders,
		LowStockItems:   m.LowStockItems,
	}, nil
}

// OrdersByStatus cantidad y valor por estado.
func (uc *ReportsUseCase) OrdersByStatus(ctx context.Context, in dto.OrdersRequest) ([]dto.StatusBreakdownDTO, error) {
	_, span := startSpan(ctx, "reports.orders_by_status", attribute.Int("orders", len(in.Orders)))
	defer span.End()

	groups := analytics.OrdersByStatus(toOrders(in.Orders))
	out := make([]dto.StatusBreakdownDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.StatusBreakdownDTO{
			Status: string(g.Status),
			Label:  g.Status.Label(),
			Count:  g.Count,
			Value:  g.Value,
		})
	}
	return out, nil
}

// TopProducts productos con mayor ingreso. limit <= 0 usa el valor configurado;
// el resto se acota a [1, MaxTopProducts].
func (uc *ReportsUseCase) TopProducts(ctx context.Context, in dto.OrdersRequest, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = uc.topProducts
	}
	limit = validators.Clamp(limit, 1, MaxTopProducts)
	_, span := startSpan(ctx, "reports.top_products",
		attribute.Int("orders", len(in.Orders)),
		attribute.Int("limit", limit))
	defer span.End()

	top := analytics.TopProducts(toOrders(in.Orders), limit)
	out := make([]dto.TopProductDTO, 0, len(top))
	for _, p := range top {
		out = append(out, dto.TopProductDTO{Name: p.Name, Quantity: p.Quantity, Revenue: p.Revenue})
	}
	return out, nil
}

// DateRange resuelve un preset respecto del reloj del caso de uso.
func (uc *ReportsUseCase) DateRange(ctx context.Context, preset string) (*dto.DateRangeResponse, error) {
	_, span := startSpan(ctx, "reports.date_range", attribute.String("preset", preset))
	defer span.End()

	p, err := analytics.ParsePreset(preset)
	if err != nil {
		uc.log.Warn().Str("preset", preset).Msg("preset de fecha desconocido")
		return nil, err
	}
	r, err := analytics.DateRangePresetAt(p, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.DateRangeResponse{Preset: string(p), Start: r.Start, End: r.End}, nil
}

// FilterOrders devuelve los pedidos creados dentro del preset o del rango explícito.
// El preset tiene prioridad; sin ninguno de los dos la entrada es inválida.
func (uc *ReportsUseCase) FilterOrders(ctx context.Context, in dto.FilterOrdersRequest) (*dto.FilterOrdersResponse, error) {
	ctx, span := startSpan(ctx, "reports.filter_orders", attribute.Int("orders", len(in.Orders)))
	defer span.End()

	var rng dto.DateRangeResponse
	switch {
	case in.Preset != "":
		r, err := uc.DateRange(ctx, in.Preset)
		if err != nil {
			return nil, err
		}
		rng = *r
	case in.StartDate != nil && in.EndDate != nil:
		if in.StartDate.After(*in.EndDate) {
			return nil, domain.ErrInvalidRange
		}
		rng = dto.DateRangeResponse{Start: *in.StartDate, End: *in.EndDate}
	default:
		return nil, fmt.Errorf("%w: se requiere preset o start_date y end_date", domain.ErrInvalidInput)
	}

	kept := analytics.FilterByDateRange(toOrders(in.Orders), rng.Start, rng.End)
	return &dto.FilterOrdersResponse{Range: rng, Count: len(kept), Orders: fromOrders(kept)}, nil
}

func (uc *ReportsUseCase) warnMissingProducts(orders []entity.Order) {
	if n := itemsWithoutProduct(orders); n > 0 {
		uc.log.Warn().Int("items", n).Msg("ítems sin producto; no aportan costo")
	}
}
