// Package units convierte cantidades entre unidades de medida de la misma categoría.
package units

import "github.com/shopspring/decimal"

// Category familia de unidades convertibles entre sí.
type Category string

const (
	CategoryLength   Category = "LENGTH"
	CategoryWeight   Category = "WEIGHT"
	CategoryQuantity Category = "QUANTITY"
)

// Unit unidad soportada. RatioToBase indica cuántas de esta unidad forman una unidad base
// (100 cm = 1 m → 100).
type Unit struct {
	Value       string
	Label       string
	Category    Category
	RatioToBase decimal.Decimal
}

// Units catálogo de unidades: base m, kg y un.
var Units = []Unit{
	{Value: "m", Label: "Metros (m)", Category: CategoryLength, RatioToBase: decimal.NewFromInt(1)},
	{Value: "cm", Label: "Centímetros (cm)", Category: CategoryLength, RatioToBase: decimal.NewFromInt(100)},
	{Value: "mm", Label: "Milímetros (mm)", Category: CategoryLength, RatioToBase: decimal.NewFromInt(1000)},
	{Value: "kg", Label: "Quilos (kg)", Category: CategoryWeight, RatioToBase: decimal.NewFromInt(1)},
	{Value: "g", Label: "Gramas (g)", Category: CategoryWeight, RatioToBase: decimal.NewFromInt(1000)},
	{Value: "un", Label: "Unidades (un)", Category: CategoryQuantity, RatioToBase: decimal.NewFromInt(1)},
	{Value: "pct", Label: "Pacote (pct)", Category: CategoryQuantity, RatioToBase: decimal.NewFromInt(1)},
	{Value: "cj", Label: "Conjunto (cj)", Category: CategoryQuantity, RatioToBase: decimal.NewFromInt(1)},
}

// Lookup busca una unidad por su código.
func Lookup(value string) (Unit, bool) {
	for _, u := range Units {
		if u.Value == value {
			return u, true
		}
	}
	return Unit{}, false
}

// Convert convierte quantity de from a to. Si alguna unidad es desconocida o las
// categorías difieren, devuelve quantity sin cambios.
// Ej.: 50 cm → m = 0.5; 1 m → cm = 100.
func Convert(quantity decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return quantity
	}
	src, ok1 := Lookup(from)
	dst, ok2 := Lookup(to)
	if !ok1 || !ok2 || src.Category != dst.Category {
		return quantity
	}
	return quantity.Div(src.RatioToBase).Mul(dst.RatioToBase)
}
