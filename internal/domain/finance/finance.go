// Package finance resume un conjunto de pedidos en ingresos, costos y ganancia
// usando el motor de costeo para cada ítem.
package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Atelie-api/internal/domain/costing"
	"github.com/jhoicas/Atelie-api/internal/domain/entity"
	"github.com/jhoicas/Atelie-api/internal/domain/money"
)

// PeriodLayout formato de la clave de período mensual.
const PeriodLayout = "2006-01"

// Summary totales financieros de un conjunto de pedidos.
type Summary struct {
	TotalRevenue      decimal.Decimal
	TotalCosts        decimal.Decimal
	TotalProfit       decimal.Decimal
	TotalMaterialCost decimal.Decimal
	TotalLaborCost    decimal.Decimal
	TotalFixedCost    decimal.Decimal
}

// PeriodSummary totales de un mes.
type PeriodSummary struct {
	Period  string
	Orders  int
	Revenue decimal.Decimal
	Costs   decimal.Decimal
	Profit  decimal.Decimal
}

// Summarize suma totalValue de todos los pedidos (sin filtrar por estado) y acumula,
// por ítem, costo de materiales, mano de obra y costo fijo prorrateado multiplicados
// por la cantidad. Un ítem sin producto no aporta costo.
func Summarize(orders []entity.Order, p costing.Params) Summary {
	s := Summary{
		TotalRevenue:      decimal.Zero,
		TotalMaterialCost: decimal.Zero,
		TotalLaborCost:    decimal.Zero,
		TotalFixedCost:    decimal.Zero,
	}
	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalValue)
		for _, it := range o.Items {
			m, l, f := itemCosts(it, p)
			s.TotalMaterialCost = s.TotalMaterialCost.Add(m)
			s.TotalLaborCost = s.TotalLaborCost.Add(l)
			s.TotalFixedCost = s.TotalFixedCost.Add(f)
		}
	}
	s.TotalCosts = s.TotalMaterialCost.Add(s.TotalLaborCost).Add(s.TotalFixedCost)
	s.TotalProfit = s.TotalRevenue.Sub(s.TotalCosts)
	return s
}

// ProfitMargin ganancia / ingresos * 100; cero sin ingresos.
func ProfitMargin(s Summary) decimal.Decimal {
	return money.Percent(s.TotalProfit, s.TotalRevenue)
}

// RevenueByPeriod agrupa los pedidos por mes de creación (PeriodLayout) y resume cada grupo.
// El resultado va ordenado por período ascendente.
func RevenueByPeriod(orders []entity.Order, p costing.Params) []PeriodSummary {
	buckets := make(map[string][]entity.Order)
	for _, o := range orders {
		key := o.CreatedAt.Format(PeriodLayout)
		buckets[key] = append(buckets[key], o)
	}

	out := make([]PeriodSummary, 0, len(buckets))
	for period, group := range buckets {
		s := Summarize(group, p)
		out = append(out, PeriodSummary{
			Period:  period,
			Orders:  len(group),
			Revenue: s.TotalRevenue,
			Costs:   s.TotalCosts,
			Profit:  s.TotalProfit,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

func itemCosts(it entity.OrderItem, p costing.Params) (material, labor, fixed decimal.Decimal) {
	if it.Product == nil || it.Quantity <= 0 {
		return decimal.Zero, decimal.Zero, decimal.Zero
	}
	calc := costing.SuggestedPrice(*it.Product, p)
	qty := decimal.NewFromInt(int64(it.Quantity))
	return calc.MaterialCost.Mul(qty), calc.LaborCost.Mul(qty), calc.FixedCost.Mul(qty)
}
