// Package orders totaliza pedidos aplicando descuentos por unidad y de pedido.
package orders

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Atelie-api/internal/domain/entity"
	"github.com/jhoicas/Atelie-api/internal/domain/money"
)

// LineTotal (price - discount) * quantity. El descuento por unidad se limita a [0, price]
// y una cantidad negativa se trata como cero.
func LineTotal(item entity.OrderItem) decimal.Decimal {
	if item.Quantity <= 0 {
		return decimal.Zero
	}
	price := money.NonNegative(item.Price)
	discount := money.Clamp(item.Discount, decimal.Zero, price)
	return price.Sub(discount).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// ItemsTotal suma de LineTotal sin aplicar el descuento del pedido.
func ItemsTotal(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(LineTotal(it))
	}
	return total
}

// Total total del pedido: ItemsTotal(items) - orderDiscount, nunca negativo.
func Total(items []entity.OrderItem, orderDiscount decimal.Decimal) decimal.Decimal {
	return money.NonNegative(ItemsTotal(items).Sub(orderDiscount))
}

// TotalOf calcula el total de un pedido con su propio descuento.
func TotalOf(o entity.Order) decimal.Decimal {
	return Total(o.Items, o.Discount)
}
