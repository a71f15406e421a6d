package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jhoicas/Atelie-api/internal/application/dto"
	"github.com/jhoicas/Atelie-api/internal/domain/costing"
	"github.com/jhoicas/Atelie-api/internal/domain/money"
	"github.com/jhoicas/Atelie-api/internal/domain/orders"
	"github.com/jhoicas/Atelie-api/pkg/logger"
)

// PricingUseCase precio sugerido, margen de contribución y total de pedidos.
type PricingUseCase struct {
	defaults costing.Params
	log      *logger.Logger
}

// NewPricingUseCase construye el caso de uso con los parámetros de costeo configurados.
func NewPricingUseCase(defaults costing.Params, log *logger.Logger) *PricingUseCase {
	return &PricingUseCase{defaults: defaults, log: log.Component("pricing")}
}

// SuggestedPrice calcula el desglose de costos y el precio sugerido de un producto.
func (uc *PricingUseCase) SuggestedPrice(ctx context.Context, in dto.SuggestedPriceRequest) (*dto.PriceCalculationResponse, error) {
	_, span := startSpan(ctx, "pricing.suggested_price",
		attribute.Int("product.materials", len(in.Product.Materials)))
	defer span.End()

	product := toProduct(in.Product)
	params := paramsFor(uc.defaults, in.Costing)
	calc := costing.SuggestedPrice(product, params)

	if missing := linesWithoutMaterial(product.Materials); missing > 0 {
		uc.log.Warn().Str("product_id", product.ID).Int("lines", missing).
			Msg("líneas de ficha técnica sin insumo; aportan costo cero")
	}
	uc.log.Debug().
		Str("product_id", product.ID).
		Str("base_cost", calc.BaseCost.String()).
		Str("suggested_price", calc.SuggestedPrice.String()).
		Msg("precio sugerido calculado")

	return &dto.PriceCalculationResponse{
		MaterialCost:                 money.RoundDisplay(calc.MaterialCost),
		LaborCost:                    money.RoundDisplay(calc.LaborCost),
		FixedCost:                    money.RoundDisplay(calc.FixedCost),
		BaseCost:                     money.RoundDisplay(calc.BaseCost),
		MarginValue:                  calc.MarginValue,
		SuggestedPrice:               calc.SuggestedPrice,
		AnalyzedPrice:                calc.AnalyzedPrice,
		ContributionMargin:           calc.ContributionMargin,
		ContributionMarginPercentage: calc.ContributionMarginPercentage,
		VariableCostsTotal:           calc.VariableCostsTotal,
		TaxAmount:                    calc.TaxAmount,
		CardFeeAmount:                calc.CardFeeAmount,
		BreakEvenUnits:               calc.BreakEvenUnits,
		BreakEvenRevenue:             calc.BreakEvenRevenue,
	}, nil
}

// ContributionMargin ((price - variableCost) / price) * 100; cero si el precio es cero.
func (uc *PricingUseCase) ContributionMargin(ctx context.Context, in dto.ContributionMarginRequest) (*dto.ContributionMarginResponse, error) {
	_, span := startSpan(ctx, "pricing.contribution_margin")
	defer span.End()

	pct := costing.ContributionMarginPercentage(in.Price, in.VariableCost)
	return &dto.ContributionMarginResponse{
		Price:                        in.Price,
		VariableCost:                 in.VariableCost,
		ContributionMarginPercentage: money.RoundDisplay(pct),
	}, nil
}

// OrderTotal totaliza las líneas y aplica el descuento del pedido; el total nunca es negativo.
func (uc *PricingUseCase) OrderTotal(ctx context.Context, in dto.OrderTotalRequest) (*dto.OrderTotalResponse, error) {
	_, span := startSpan(ctx, "pricing.order_total", attribute.Int("order.items", len(in.Items)))
	defer span.End()

	items := toOrderItems(in.Items)
	lines := make([]dto.LineTotalDTO, 0, len(items))
	for _, it := range items {
		lines = append(lines, dto.LineTotalDTO{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Total:     orders.LineTotal(it),
		})
	}
	return &dto.OrderTotalResponse{
		Lines:         lines,
		ItemsTotal:    orders.ItemsTotal(items),
		OrderDiscount: in.OrderDiscount,
		Total:         orders.Total(items, in.OrderDiscount),
	}, nil
}
