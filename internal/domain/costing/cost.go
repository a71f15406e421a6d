package costing

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/jhoicas/Atelie-api/internal/domain/entity"
	"github.com/jhoicas/Atelie-api/internal/domain/money"
	"github.com/jhoicas/Atelie-api/internal/domain/units"
)

// MaterialCost suma quantity * material.cost de cada línea de la ficha técnica.
// La cantidad se convierte de la unidad de la línea a la unidad del material cuando
// ambas son de la misma categoría. Una línea sin material (o sin costo) aporta cero.
func MaterialCost(lines []entity.ProductMaterial) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		if line.Material == nil {
			continue
		}
		qty := units.Convert(line.Quantity, line.Unit, line.Material.Unit)
		total = total.Add(qty.Mul(line.Material.Cost))
	}
	return total
}

// LaborCost costo de mano de obra: (minutes / 60) * hourlyRate, a 4 decimales.
// Minutos o tarifa negativos cuentan como cero.
func LaborCost(minutes, hourlyRate decimal.Decimal) decimal.Decimal {
	minutes, hourlyRate = money.NonNegative(minutes), money.NonNegative(hourlyRate)
	return money.RoundInternal(minutes.Mul(hourlyRate).Div(money.Sixty))
}

// ResolveFixedCostValue devuelve el valor de un costo fijo probando las claves de
// entity.FixedCostKeys en orden. Una clave ausente, no numérica, booleana, en cero o
// negativa pasa a la siguiente; si ninguna aporta un valor, devuelve cero.
func ResolveFixedCostValue(entry entity.FixedCostEntry) decimal.Decimal {
	for _, key := range entity.FixedCostKeys {
		raw, ok := entry[key]
		if !ok || raw == nil {
			continue
		}
		v, ok := toDecimal(raw)
		if !ok || !v.IsPositive() {
			continue
		}
		return v
	}
	return decimal.Zero
}

// FixedCostPool suma mensual de los costos fijos.
func FixedCostPool(entries []entity.FixedCostEntry) decimal.Decimal {
	pool := decimal.Zero
	for _, e := range entries {
		pool = pool.Add(ResolveFixedCostValue(e))
	}
	return pool
}

// FixedCost prorratea el pool mensual según la fracción de la capacidad mensual
// que consume laborMinutes: (laborMinutes / 60 / workingHoursPerMonth) * pool.
// Devuelve cero si workingHoursPerMonth <= 0.
func FixedCost(laborMinutes, pool, workingHoursPerMonth decimal.Decimal) decimal.Decimal {
	if !workingHoursPerMonth.IsPositive() || !laborMinutes.IsPositive() || !pool.IsPositive() {
		return decimal.Zero
	}
	return money.RoundInternal(laborMinutes.Mul(pool).Div(money.Sixty.Mul(workingHoursPerMonth)))
}

func toDecimal(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case bool:
		return decimal.Zero, false
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}
