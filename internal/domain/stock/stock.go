// Package stock reduce movimientos de stock a saldos por insumo y variante de color,
// y deriva alertas de stock bajo.
package stock

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Atelie-api/internal/domain/entity"
)

// Balance saldo final de un insumo en una variante. Color nil = variante por defecto.
// El saldo puede ser negativo (sobreconsumo); no se recorta.
type Balance struct {
	MaterialID string
	Color      *string
	Balance    decimal.Decimal
}

type key struct {
	materialID string
	color      string // "" = variante por defecto
}

// NormalizeColor recorta espacios; nil o vacío devuelve "" (variante por defecto).
func NormalizeColor(c *string) string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(*c)
}

// Reduce suma entradas y resta salidas por (materialId, color) en orden de primera aparición.
// Los movimientos con tipo desconocido se ignoran y no crean la clave.
func Reduce(movements []entity.StockMovement) []Balance {
	out := make([]Balance, 0)
	index := make(map[key]int)
	for _, mv := range movements {
		dir := mv.Type.Direction()
		if dir == entity.DirectionUnknown {
			continue
		}
		k := key{materialID: mv.MaterialID, color: NormalizeColor(mv.Color)}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Balance{MaterialID: k.materialID, Color: colorPtr(k.color), Balance: decimal.Zero})
		}
		if dir == entity.DirectionInbound {
			out[i].Balance = out[i].Balance.Add(mv.Quantity)
		} else {
			out[i].Balance = out[i].Balance.Sub(mv.Quantity)
		}
	}
	return out
}

// BalanceOf busca el saldo de (materialID, color); cero si no hay movimientos.
func BalanceOf(balances []Balance, materialID string, color *string) decimal.Decimal {
	c := NormalizeColor(color)
	for _, b := range balances {
		if b.MaterialID == materialID && NormalizeColor(b.Color) == c {
			return b.Balance
		}
	}
	return decimal.Zero
}

// UnknownMovements cuenta movimientos con tipo no reconocido.
func UnknownMovements(movements []entity.StockMovement) int {
	n := 0
	for _, mv := range movements {
		if mv.Type.Direction() == entity.DirectionUnknown {
			n++
		}
	}
	return n
}

func colorPtr(c string) *string {
	if c == "" {
		return nil
	}
	return &c
}
