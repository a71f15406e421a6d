package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Atelie-api/internal/domain/entity"
	"github.com/jhoicas/Atelie-api/internal/domain/money"
)

// PriceCalculation desglose del precio sugerido de un producto.
type PriceCalculation struct {
	MaterialCost   decimal.Decimal // materiales + costo de compra (reventa)
	LaborCost      decimal.Decimal
	FixedCost      decimal.Decimal
	BaseCost       decimal.Decimal // MaterialCost + LaborCost + FixedCost, a 2 decimales
	MarginValue    decimal.Decimal // SuggestedPrice - BaseCost, ambos ya redondeados
	SuggestedPrice decimal.Decimal

	// Vista de contribución sobre el precio analizado (manual o sugerido).
	AnalyzedPrice                decimal.Decimal
	ContributionMargin           decimal.Decimal
	ContributionMarginPercentage decimal.Decimal
	VariableCostsTotal           decimal.Decimal
	TaxAmount                    decimal.Decimal
	CardFeeAmount                decimal.Decimal
	BreakEvenUnits               *decimal.Decimal // nil si la contribución no es positiva
	BreakEvenRevenue             *decimal.Decimal // nil si la contribución no es positiva

	Materials []entity.ProductMaterial
}

// SuggestedPrice calcula el precio sugerido de un producto:
//
//	materialCost = MaterialCost(materials) + costo de compra
//	laborCost    = LaborCost(laborTime, hourlyRate)
//	fixedCost    = (laborTime / 60 / workingHoursPerMonth) * pool de costos fijos
//	baseCost     = materialCost + laborCost + fixedCost
//	precio       = baseCost / (1 - margen%)   (margen sobre el precio de venta)
//
// Con margen >= 100% el divisor se anula y se usa baseCost * (1 + margen%).
// Con margen 0 el precio sugerido es igual a baseCost.
func SuggestedPrice(product entity.Product, p Params) PriceCalculation {
	purchaseCost := money.NonNegative(money.OrZero(product.PurchaseCost))
	materialCost := MaterialCost(product.Materials).Add(purchaseCost)
	laborCost := LaborCost(product.LaborTime, p.HourlyRate)
	pool := p.FixedCostPool()
	fixedCost := FixedCost(product.LaborTime, pool, p.WorkingHoursPerMonth)

	baseCost := materialCost.Add(laborCost).Add(fixedCost)
	price := MarginPrice(baseCost, product.ProfitMargin)

	analyzed := money.RoundDisplay(price)
	if product.Price != nil && !product.Price.IsZero() {
		analyzed = *product.Price
	}
	// La contribución excluye el costo fijo prorrateado.
	pa := AnalyzeProfitability(analyzed, materialCost.Add(laborCost), p.TaxRate, p.CardFeeRate, pool)

	displayBase := money.RoundDisplay(baseCost)
	displayPrice := money.RoundDisplay(price)

	return PriceCalculation{
		MaterialCost:   materialCost,
		LaborCost:      laborCost,
		FixedCost:      fixedCost,
		BaseCost:       displayBase,
		MarginValue:    displayPrice.Sub(displayBase),
		SuggestedPrice: displayPrice,

		AnalyzedPrice:                analyzed,
		ContributionMargin:           money.RoundDisplay(pa.ContributionMargin),
		ContributionMarginPercentage: money.RoundDisplay(pa.ContributionMarginPercentage),
		VariableCostsTotal:           money.RoundDisplay(pa.VariableCostsTotal),
		TaxAmount:                    money.RoundDisplay(pa.TaxAmount),
		CardFeeAmount:                money.RoundDisplay(pa.CommissionAmount),
		BreakEvenUnits:               pa.BreakEvenUnits,
		BreakEvenRevenue:             roundPtr(pa.BreakEvenRevenue),

		Materials: product.Materials,
	}
}

// MarginPrice precio con margen sobre el precio de venta: cost / (1 - margin%).
// Si margin% >= 100 usa cost * (1 + margin%).
func MarginPrice(cost, marginPercent decimal.Decimal) decimal.Decimal {
	rate := money.Rate(marginPercent)
	one := decimal.NewFromInt(1)
	if rate.GreaterThanOrEqual(one) {
		return cost.Mul(one.Add(rate))
	}
	return cost.Div(one.Sub(rate))
}

// MarkupPrice precio con margen sobre el costo: cost * (1 + margin%).
func MarkupPrice(cost, marginPercent decimal.Decimal) decimal.Decimal {
	return cost.Mul(decimal.NewFromInt(1).Add(money.Rate(marginPercent)))
}

// ContributionMarginPercentage ((price - variableCost) / price) * 100; cero si price es cero.
func ContributionMarginPercentage(price, variableCost decimal.Decimal) decimal.Decimal {
	return money.Percent(price.Sub(variableCost), price)
}

func roundPtr(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	return money.Ptr(money.RoundDisplay(*v))
}
