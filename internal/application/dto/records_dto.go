package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registros de entrada. La API no persiste nada: cada petición trae los registros
// ya cargados por el cliente.

// MaterialDTO insumo.
type MaterialDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Unit        string           `json:"unit"`
	Cost        decimal.Decimal  `json:"cost" validate:"gte=0"`
	Quantity    decimal.Decimal  `json:"quantity"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
	Colors      []string         `json:"colors"`
}

// ProductMaterialDTO línea de la ficha técnica.
type ProductMaterialDTO struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gte=0"`
	Unit       string          `json:"unit"`
	Material   *MaterialDTO    `json:"material"`
}

// ProductDTO producto con su ficha técnica. LaborTime en minutos; ProfitMargin en %.
type ProductDTO struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	LaborTime    decimal.Decimal      `json:"labor_time" validate:"gte=0"`
	ProfitMargin decimal.Decimal      `json:"profit_margin" validate:"gte=0"`
	Materials    []ProductMaterialDTO `json:"materials" validate:"dive"`
	Price        *decimal.Decimal     `json:"price" validate:"omitempty,gte=0"` // precio manual; nil = sugerido
	Cost         *decimal.Decimal     `json:"cost" validate:"omitempty,gte=0"`  // costo de compra (reventa)
}

// OrderItemDTO línea de pedido. Discount es por unidad.
type OrderItemDTO struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	Price     decimal.Decimal `json:"price" validate:"gte=0"`
	Discount  decimal.Decimal `json:"discount" validate:"gte=0"`
	Product   *ProductDTO     `json:"product"`
}

// OrderDTO pedido.
type OrderDTO struct {
	ID         string          `json:"id"`
	Status     string          `json:"status" validate:"required"`
	TotalValue decimal.Decimal `json:"total_value"`
	Discount   decimal.Decimal `json:"discount" validate:"gte=0"`
	CreatedAt  time.Time       `json:"created_at"`
	Items      []OrderItemDTO  `json:"items" validate:"dive"`
}

// StockMovementDTO movimiento de stock; Quantity es siempre positiva.
type StockMovementDTO struct {
	MaterialID string          `json:"material_id" validate:"required"`
	Type       string          `json:"type" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gte=0"`
	Color      *string         `json:"color"`
}
