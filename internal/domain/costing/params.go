// Package costing implementa el motor de costeo: costo de materiales, mano de obra,
// prorrateo de costos fijos, precio sugerido y margen de contribución.
//
// Todas las funciones son puras: no hacen IO, no leen estado global y no modifican
// sus entradas. Los datos incompletos (material sin costo, costos fijos vacíos,
// horas de trabajo en cero) se degradan a cero en lugar de fallar.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Atelie-api/internal/domain/entity"
)

// Valores por defecto de la configuración observada del ateliê.
var (
	DefaultHourlyRate           = decimal.NewFromInt(20)
	DefaultWorkingHoursPerMonth = decimal.NewFromInt(160)
)

// Params parámetros de costeo que el llamador inyecta en cada cálculo.
// HourlyRate en moneda/hora; TaxRate y CardFeeRate en porcentaje sobre el precio.
type Params struct {
	HourlyRate           decimal.Decimal
	FixedCosts           []entity.FixedCostEntry
	WorkingHoursPerMonth decimal.Decimal
	TaxRate              decimal.Decimal
	CardFeeRate          decimal.Decimal
}

// DefaultParams devuelve los parámetros por defecto (20/hora, 160 horas/mes, sin costos fijos).
func DefaultParams() Params {
	return Params{
		HourlyRate:           DefaultHourlyRate,
		WorkingHoursPerMonth: DefaultWorkingHoursPerMonth,
	}
}

// WithFixedCosts devuelve una copia de p con los costos fijos indicados.
func (p Params) WithFixedCosts(entries []entity.FixedCostEntry) Params {
	p.FixedCosts = entries
	return p
}

// FixedCostPool suma mensual de los costos fijos configurados.
func (p Params) FixedCostPool() decimal.Decimal {
	return FixedCostPool(p.FixedCosts)
}
