package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Atelie-api/internal/domain/analytics"
	"github.com/jhoicas/Atelie-api/internal/domain/costing"
	"github.com/jhoicas/Atelie-api/internal/domain/entity"
	"github.com/jhoicas/Atelie-api/internal/domain/money"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Pedidos de referencia: Camisa entregada (2 x 100) y Vestido pendiente (1 x 150).
func fixtureOrders() []entity.Order {
	camisa := &entity.Product{
		ID: "p1", Name: "Camisa", LaborTime: dec("60"), ProfitMargin: dec("50"),
		Materials: []entity.ProductMaterial{{
			MaterialID: "m1", Quantity: dec("1"), Unit: "m",
			Material: &entity.Material{ID: "m1", Name: "Tecido", Unit: "m", Cost: dec("30")},
		}},
	}
	vestido := &entity.Product{ID: "p2", Name: "Vestido", LaborTime: dec("120"), ProfitMargin: dec("60")}

	return []entity.Order{
		{
			ID: "1", Status: entity.OrderStatusDelivered, TotalValue: dec("200"), CreatedAt: day("2026-01-20"),
			Items: []entity.OrderItem{{ProductID: "p1", Quantity: 2, Price: dec("100"), Product: camisa}},
		},
		{
			ID: "2", Status: entity.OrderStatusPending, TotalValue: dec("150"), CreatedAt: day("2026-01-22"),
			Items: []entity.OrderItem{{ProductID: "p2", Quantity: 1, Price: dec("150"), Product: vestido}},
		},
	}
}

func fixtureMaterials() []entity.Material {
	return []entity.Material{
		{ID: "m1", Name: "Tecido", Unit: "m", Cost: dec("30"), Quantity: dec("5"), MinQuantity: money.Ptr(dec("10"))},
		{ID: "m2", Name: "Linha", Unit: "un", Cost: dec("5"), Quantity: dec("50"), MinQuantity: money.Ptr(dec("20"))},
	}
}

func TestDashboardMetrics(t *testing.T) {
	m := analytics.DashboardMetrics(fixtureOrders(), fixtureMaterials(), costing.DefaultParams())

	assert.True(t, m.TotalRevenue.Equal(dec("350")))
	assert.Equal(t, 1, m.ActiveOrders)
	assert.Equal(t, 1, m.CompletedOrders)
	assert.Equal(t, 1, m.PendingOrders)
	assert.Equal(t, 1, m.LowStockItems)
	assert.True(t, m.ProfitMargin.IsPositive())
	// costos: 2 * (30 + 20) + 40 = 140
	assert.True(t, m.TotalCosts.Equal(dec("140")), "costs = %s", m.TotalCosts)
	assert.True(t, m.TotalProfit.Equal(dec("210")))
	assert.True(t, m.ProfitMargin.Equal(dec("60")))
}

func TestDashboardMetrics_Vacio(t *testing.T) {
	m := analytics.DashboardMetrics(nil, nil, costing.DefaultParams())

	assert.True(t, m.TotalRevenue.IsZero())
	assert.True(t, m.ProfitMargin.IsZero())
	assert.Zero(t, m.ActiveOrders)
	assert.Zero(t, m.LowStockItems)
}

func TestDashboardMetrics_EstadosYAlias(t *testing.T) {
	orders := []entity.Order{
		{Status: entity.OrderStatusPending, TotalValue: dec("100")},
		{Status: entity.OrderStatusPending, TotalValue: dec("50")},
		{Status: entity.OrderStatusProducing},
		{Status: entity.OrderStatusProduction},
		{Status: entity.OrderStatusDelivered, TotalValue: dec("200")},
		{Status: entity.OrderStatusCompleted},
		{Status: entity.OrderStatusCancelled},
		{Status: entity.OrderStatusQuotation},
		{Status: entity.OrderStatusReady},
	}

	m := analytics.DashboardMetrics(orders, nil, costing.DefaultParams())

	assert.Equal(t, 4, m.ActiveOrders)
	assert.Equal(t, 2, m.CompletedOrders)
	assert.Equal(t, 2, m.PendingOrders)
	assert.True(t, m.TotalRevenue.Equal(dec("350")))
}

func TestIsLowStock(t *testing.T) {
	materials := []entity.Material{
		{Quantity: dec("5"), MinQuantity: money.Ptr(dec("10"))},
		{Quantity: dec("20"), MinQuantity: money.Ptr(dec("10"))},
		{Quantity: decimal.Zero, MinQuantity: money.Ptr(dec("5"))},
		{Quantity: decimal.Zero},
	}
	m := analytics.DashboardMetrics(nil, materials, costing.DefaultParams())
	assert.Equal(t, 2, m.LowStockItems)

	assert.True(t, analytics.IsLowStock(entity.Material{Quantity: dec("10"), MinQuantity: money.Ptr(dec("10"))}))
	assert.False(t, analytics.IsLowStock(entity.Material{Quantity: dec("-1")}))
}

func TestOrdersByStatus(t *testing.T) {
	orders := []entity.Order{
		{Status: entity.OrderStatusPending, TotalValue: dec("100")},
		{Status: entity.OrderStatusDelivered, TotalValue: dec("200")},
		{Status: entity.OrderStatusPending, TotalValue: dec("50")},
	}

	got := analytics.OrdersByStatus(orders)

	require.Len(t, got, 2)
	byStatus := map[entity.OrderStatus]analytics.StatusBreakdown{}
	count := 0
	total := decimal.Zero
	for _, s := range got {
		byStatus[s.Status] = s
		count += s.Count
		total = total.Add(s.Value)
	}
	assert.Equal(t, 2, byStatus[entity.OrderStatusPending].Count)
	assert.True(t, byStatus[entity.OrderStatusPending].Value.Equal(dec("150")))
	assert.Equal(t, 1, byStatus[entity.OrderStatusDelivered].Count)
	assert.True(t, byStatus[entity.OrderStatusDelivered].Value.Equal(dec("200")))

	assert.Equal(t, len(orders), count)
	assert.True(t, total.Equal(dec("350")))
}

func TestOrdersByStatus_Vacio(t *testing.T) {
	got := analytics.OrdersByStatus(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopProducts(t *testing.T) {
	a := &entity.Product{Name: "Product A"}
	b := &entity.Product{Name: "Product B"}
	c := &entity.Product{Name: "Product C"}
	orders := []entity.Order{
		{Items: []entity.OrderItem{{Quantity: 2, Price: dec("50"), Product: a}, {Quantity: 1, Price: dec("200"), Product: b}}},
		{Items: []entity.OrderItem{{Quantity: 1, Price: dec("50"), Product: a}, {Quantity: 1, Price: dec("10"), Product: c}}},
	}

	got := analytics.TopProducts(orders, 5)

	require.Len(t, got, 3)
	assert.Equal(t, "Product B", got[0].Name)
	assert.True(t, got[0].Revenue.Equal(dec("200")))
	assert.Equal(t, "Product A", got[1].Name)
	assert.True(t, got[1].Revenue.Equal(dec("150")))
	assert.Equal(t, 3, got[1].Quantity)
	assert.Equal(t, "Product C", got[2].Name)

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Revenue.GreaterThan(got[i-1].Revenue))
	}
}

func TestTopProducts_Fixture(t *testing.T) {
	top := analytics.TopProducts(fixtureOrders(), 5)
	require.Len(t, top, 2)
	assert.Equal(t, "Camisa", top[0].Name)
	assert.True(t, top[0].Revenue.Equal(dec("200")))
	assert.Equal(t, 2, top[0].Quantity)

	assert.Len(t, analytics.TopProducts(fixtureOrders(), 1), 1)
}

func TestTopProducts_EmpateConservaPrimeraAparicion(t *testing.T) {
	orders := []entity.Order{{Items: []entity.OrderItem{
		{Quantity: 1, Price: dec("10"), Product: &entity.Product{Name: "Z"}},
		{Quantity: 1, Price: dec("10"), Product: &entity.Product{Name: "A"}},
		{Quantity: 1, Price: dec("10"), ProductID: "sem-produto"},
	}}}

	got := analytics.TopProducts(orders, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "Z", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
	assert.Equal(t, "sem-produto", got[2].Name)
}

func TestTopProducts_LimiteCeroUsaDefault(t *testing.T) {
	var items []entity.OrderItem
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		items = append(items, entity.OrderItem{Quantity: 1, Price: dec("1"), Product: &entity.Product{Name: n}})
	}
	assert.Len(t, analytics.TopProducts([]entity.Order{{Items: items}}, 0), analytics.DefaultTopProducts)
	assert.Len(t, analytics.TopProducts([]entity.Order{{Items: items}}, -3), analytics.DefaultTopProducts)
}

func TestFilterByDateRange_ExtremosIncluidos(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	orders := []entity.Order{
		{ID: "antes", CreatedAt: start.Add(-time.Nanosecond)},
		{ID: "inicio", CreatedAt: start},
		{ID: "medio", CreatedAt: day("2026-01-15")},
		{ID: "fin", CreatedAt: end},
		{ID: "despues", CreatedAt: end.Add(time.Second)},
	}

	got := analytics.FilterByDateRange(orders, start, end)

	ids := make([]string, 0, len(got))
	for _, o := range got {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"inicio", "medio", "fin"}, ids)
}
