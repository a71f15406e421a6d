package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Atelie-api/internal/domain/money"
)

// ApportionedFreight prorratea el flete total de una compra según el valor del ítem:
// flete_item = flete_total * (valor_item / valor_total). Cero si el total es cero.
func ApportionedFreight(itemValue, totalItemsValue, totalFreight decimal.Decimal) decimal.Decimal {
	return totalFreight.Mul(money.Div(itemValue, totalItemsValue))
}

// ItemPurchaseCost costo unitario de compra incluyendo el flete prorrateado:
// (valor_item + flete_item) / cantidad. Cero si la cantidad es cero.
func ItemPurchaseCost(itemValue, quantity, apportionedFreight decimal.Decimal) decimal.Decimal {
	return money.Div(itemValue.Add(apportionedFreight), quantity)
}

// MovingAverageCost costo promedio ponderado tras una entrada.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si no había stock, el nuevo costo es el de la entrada.
func MovingAverageCost(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.IsZero() {
		return decimal.Zero
	}
	if stockActual.IsZero() {
		return costoEntrada
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// HourlyRate valor hora a partir de un salario mensual. Cero si hours es cero.
func HourlyRate(monthlySalary, workingHoursPerMonth decimal.Decimal) decimal.Decimal {
	return money.Div(monthlySalary, workingHoursPerMonth)
}

// FixedCostRate tasa de absorción de costos fijos por hora. Cero si hours es cero.
func FixedCostRate(totalMonthlyFixed, workingHoursPerMonth decimal.Decimal) decimal.Decimal {
	return money.Div(totalMonthlyFixed, workingHoursPerMonth)
}
