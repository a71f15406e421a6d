package entity

import "github.com/shopspring/decimal"

// Material representa un insumo del ateliê (tecido, linha, botão...).
// Cost es el costo por unidad de medida del insumo; Quantity es informativo
// (el saldo real se deriva de los movimientos de stock).
type Material struct {
	ID          string
	Name        string
	Unit        string
	Cost        decimal.Decimal
	Quantity    decimal.Decimal
	MinQuantity *decimal.Decimal // nil = sin punto mínimo configurado
	Colors      []string
}

// ProductMaterial es una línea de la ficha técnica (bill of materials) de un producto.
// Quantity es el consumo por unidad de producto, expresado en Unit.
type ProductMaterial struct {
	MaterialID string
	Quantity   decimal.Decimal
	Unit       string
	Material   *Material
}
