// Package money concentra los helpers numéricos del motor: degradación de valores
// ausentes a cero, división protegida y redondeos internos/de presentación.
package money

import "github.com/shopspring/decimal"

var (
	// Hundred constante para porcentajes.
	Hundred = decimal.NewFromInt(100)
	// Sixty minutos por hora.
	Sixty = decimal.NewFromInt(60)
)

const (
	internalPlaces = 4
	displayPlaces  = 2
)

// Or devuelve *v o fallback si v es nil.
func Or(v *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if v == nil {
		return fallback
	}
	return *v
}

// OrZero devuelve *v o cero si v es nil.
func OrZero(v *decimal.Decimal) decimal.Decimal {
	return Or(v, decimal.Zero)
}

// Div divide a/b; devuelve cero si b es cero.
func Div(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// Percent devuelve part/whole*100; cero si whole es cero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	return Div(part, whole).Mul(Hundred)
}

// Rate convierte un porcentaje (0–100) a fracción.
func Rate(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(Hundred)
}

// NonNegative recorta valores negativos a cero.
func NonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Clamp limita v al intervalo [lo, hi].
func Clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, lo), hi)
}

// RoundInternal redondea a 4 decimales (precisión de cálculo intermedio).
func RoundInternal(v decimal.Decimal) decimal.Decimal {
	return v.Round(internalPlaces)
}

// RoundDisplay redondea a 2 decimales, mitad hacia arriba (precisión de presentación).
func RoundDisplay(v decimal.Decimal) decimal.Decimal {
	return v.Round(displayPlaces)
}

// Ptr devuelve un puntero a v.
func Ptr(v decimal.Decimal) *decimal.Decimal {
	return &v
}
