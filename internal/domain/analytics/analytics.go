// Package analytics agrega pedidos y materiales en métricas de dashboard y reportes:
// desglose por estado, productos más vendidos, filtros por fecha e indicadores.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Atelie-api/internal/domain/costing"
	"github.com/jhoicas/Atelie-api/internal/domain/entity"
	"github.com/jhoicas/Atelie-api/internal/domain/finance"
)

// DefaultTopProducts cantidad de productos devueltos por TopProducts cuando no se indica límite.
const DefaultTopProducts = 5

// StatusBreakdown cantidad y valor de los pedidos de un estado.
type StatusBreakdown struct {
	Status entity.OrderStatus
	Count  int
	Value  decimal.Decimal
}

// TopProduct ingresos acumulados de un producto.
type TopProduct struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// Metrics indicadores del dashboard.
type Metrics struct {
	TotalRevenue    decimal.Decimal
	TotalCosts      decimal.Decimal
	TotalProfit     decimal.Decimal
	ProfitMargin    decimal.Decimal
	ActiveOrders    int
	CompletedOrders int
	PendingOrders   int
	LowStockItems   int
}

// OrdersByStatus agrupa por estado (sin resolver alias), en orden de primera aparición.
func OrdersByStatus(orders []entity.Order) []StatusBreakdown {
	out := make([]StatusBreakdown, 0)
	index := make(map[entity.OrderStatus]int)
	for _, o := range orders {
		i, ok := index[o.Status]
		if !ok {
			i = len(out)
			index[o.Status] = i
			out = append(out, StatusBreakdown{Status: o.Status, Value: decimal.Zero})
		}
		out[i].Count++
		out[i].Value = out[i].Value.Add(o.TotalValue)
	}
	return out
}

// TopProducts acumula price * quantity por nombre de producto y devuelve los limit
// de mayor ingreso. Empates conservan el orden de primera aparición. limit <= 0 usa DefaultTopProducts.
func TopProducts(orders []entity.Order, limit int) []TopProduct {
	if limit <= 0 {
		limit = DefaultTopProducts
	}
	out := make([]TopProduct, 0)
	index := make(map[string]int)
	for _, o := range orders {
		for _, it := range o.Items {
			name := productName(it)
			i, ok := index[name]
			if !ok {
				i = len(out)
				index[name] = i
				out = append(out, TopProduct{Name: name, Revenue: decimal.Zero})
			}
			out[i].Quantity += it.Quantity
			out[i].Revenue = out[i].Revenue.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func productName(it entity.OrderItem) string {
	if it.Product != nil && it.Product.Name != "" {
		return it.Product.Name
	}
	return it.ProductID
}

// FilterByDateRange pedidos con createdAt en [start, end], ambos extremos incluidos.
func FilterByDateRange(orders []entity.Order, start, end time.Time) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// DashboardMetrics resume pedidos y materiales. Activos = PENDING o PRODUCING (incluye el
// alias PRODUCTION); completados = DELIVERED (incluye COMPLETED).
func DashboardMetrics(orders []entity.Order, materials []entity.Material, p costing.Params) Metrics {
	s := finance.Summarize(orders, p)
	m := Metrics{
		TotalRevenue: s.TotalRevenue,
		TotalCosts:   s.TotalCosts,
		TotalProfit:  s.TotalProfit,
		ProfitMargin: finance.ProfitMargin(s),
	}
	for _, o := range orders {
		if o.Status.IsInFlight() {
			m.ActiveOrders++
		}
		if o.Status.IsCompleted() {
			m.CompletedOrders++
		}
		if o.Status == entity.OrderStatusPending {
			m.PendingOrders++
		}
	}
	for _, mat := range materials {
		if IsLowStock(mat) {
			m.LowStockItems++
		}
	}
	return m
}

// IsLowStock quantity <= minQuantity. Sin minQuantity configurado nunca es bajo.
func IsLowStock(m entity.Material) bool {
	if m.MinQuantity == nil {
		return false
	}
	return m.Quantity.LessThanOrEqual(*m.MinQuantity)
}
