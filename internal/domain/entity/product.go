package entity

import "github.com/shopspring/decimal"

// Product representa un producto fabricado (o revendido) por el ateliê.
// LaborTime en minutos; ProfitMargin en porcentaje (0–100).
type Product struct {
	ID           string
	Name         string
	LaborTime    decimal.Decimal
	ProfitMargin decimal.Decimal
	Materials    []ProductMaterial

	// Price es el precio de venta manual; nil = usar el precio sugerido.
	Price *decimal.Decimal
	// PurchaseCost es el costo promedio de compra (productos de reventa); se suma al costo de materiales.
	PurchaseCost *decimal.Decimal
}
