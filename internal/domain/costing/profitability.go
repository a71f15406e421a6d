package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Atelie-api/internal/domain/money"
)

// Profitability métricas de contribución de un producto a un precio dado.
type Profitability struct {
	ContributionMargin           decimal.Decimal
	ContributionMarginPercentage decimal.Decimal
	VariableCostsTotal           decimal.Decimal
	TaxAmount                    decimal.Decimal
	CommissionAmount             decimal.Decimal
	BreakEvenUnits               *decimal.Decimal // unidades mínimas (entero) o nil si no se alcanza
	BreakEvenRevenue             *decimal.Decimal // ingreso mínimo o nil si no se alcanza
}

// AnalyzeProfitability calcula margen de contribución y punto de equilibrio.
// taxRate y commissionRate son porcentajes sobre el precio; monthlyFixed es el pool
// mensual de costos fijos usado para el punto de equilibrio.
func AnalyzeProfitability(price, variableCosts, taxRate, commissionRate, monthlyFixed decimal.Decimal) Profitability {
	taxes := price.Mul(money.Rate(taxRate))
	commission := price.Mul(money.Rate(commissionRate))

	totalVariable := variableCosts.Add(taxes).Add(commission)
	margin := price.Sub(totalVariable)
	marginRatio := money.Div(margin, price)

	out := Profitability{
		ContributionMargin:           margin,
		ContributionMarginPercentage: marginRatio.Mul(money.Hundred),
		VariableCostsTotal:           totalVariable,
		TaxAmount:                    taxes,
		CommissionAmount:             commission,
	}
	if margin.IsPositive() {
		out.BreakEvenUnits = money.Ptr(monthlyFixed.Div(margin).Ceil())
	}
	if marginRatio.IsPositive() {
		out.BreakEvenRevenue = money.Ptr(monthlyFixed.Div(marginRatio))
	}
	return out
}

// PriceForTargetProfit precio necesario para alcanzar una ganancia mensual objetivo:
// (fixedCosts + desiredProfit) / projectedVolume + unitVariableCosts. Cero si el volumen es cero.
func PriceForTargetProfit(fixedCosts, desiredProfit, projectedVolume, unitVariableCosts decimal.Decimal) decimal.Decimal {
	if projectedVolume.IsZero() {
		return decimal.Zero
	}
	return fixedCosts.Add(desiredProfit).Div(projectedVolume).Add(unitVariableCosts)
}

// PsychologicalPattern terminación comercial del precio.
type PsychologicalPattern string

const (
	Pattern90    PsychologicalPattern = "90"
	Pattern99    PsychologicalPattern = "99"
	Pattern97    PsychologicalPattern = "97"
	PatternRound PsychologicalPattern = "round"
)

// ApplyPsychologicalPricing ajusta el precio a terminaciones .90/.99/.97 o lo redondea.
// Patrones desconocidos devuelven el precio sin cambios.
func ApplyPsychologicalPricing(price decimal.Decimal, pattern PsychologicalPattern) decimal.Decimal {
	whole := price.Floor()
	switch pattern {
	case Pattern90:
		return whole.Add(decimal.RequireFromString("0.90"))
	case Pattern99:
		return whole.Add(decimal.RequireFromString("0.99"))
	case Pattern97:
		return whole.Add(decimal.RequireFromString("0.97"))
	case PatternRound:
		return price.Round(0)
	}
	return price
}
