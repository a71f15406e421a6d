package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido.
type OrderStatus string

// Estados de pedido. PRODUCTION y COMPLETED son alias históricos presentes en los datos.
const (
	OrderStatusQuotation  OrderStatus = "QUOTATION"
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProducing  OrderStatus = "PRODUCING"
	OrderStatusProduction OrderStatus = "PRODUCTION"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusQuotation:  "Orçamento",
	OrderStatusPending:    "Pendente",
	OrderStatusProducing:  "Em Produção",
	OrderStatusProduction: "Em Produção",
	OrderStatusReady:      "Pronto",
	OrderStatusDelivered:  "Entregue",
	OrderStatusCompleted:  "Concluído",
	OrderStatusCancelled:  "Cancelado",
}

// Canonical resuelve los alias históricos a su estado vigente.
func (s OrderStatus) Canonical() OrderStatus {
	switch s {
	case OrderStatusProduction:
		return OrderStatusProducing
	case OrderStatusCompleted:
		return OrderStatusDelivered
	}
	return s
}

// IsInFlight indica si el pedido está en curso (pendiente o en producción).
func (s OrderStatus) IsInFlight() bool {
	c := s.Canonical()
	return c == OrderStatusPending || c == OrderStatusProducing
}

// IsCompleted indica si el pedido fue entregado.
func (s OrderStatus) IsCompleted() bool {
	return s.Canonical() == OrderStatusDelivered
}

// Label devuelve la etiqueta legible; estados desconocidos se devuelven tal cual.
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// OrderItem línea de un pedido. Price es el precio unitario realizado;
// Discount es el descuento por unidad (nunca mayor que Price).
type OrderItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	Discount  decimal.Decimal
	Product   *Product
}

// Order pedido de un cliente. Discount es el descuento a nivel de pedido,
// aplicado después de totalizar los ítems.
type Order struct {
	ID         string
	Status     OrderStatus
	TotalValue decimal.Decimal
	Discount   decimal.Decimal
	CreatedAt  time.Time
	Items      []OrderItem
}
