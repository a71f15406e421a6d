package dto

import "github.com/shopspring/decimal"

// SuggestedPriceRequest entrada de POST /api/pricing/suggested-price.
type SuggestedPriceRequest struct {
	Product ProductDTO        `json:"product"`
	Costing *CostingParamsDTO `json:"costing"`
}

// PriceCalculationResponse desglose del precio sugerido.
type PriceCalculationResponse struct {
	MaterialCost                 decimal.Decimal  `json:"material_cost"`
	LaborCost                    decimal.Decimal  `json:"labor_cost"`
	FixedCost                    decimal.Decimal  `json:"fixed_cost"`
	BaseCost                     decimal.Decimal  `json:"base_cost"`
	MarginValue                  decimal.Decimal  `json:"margin_value"`
	SuggestedPrice               decimal.Decimal  `json:"suggested_price"`
	AnalyzedPrice                decimal.Decimal  `json:"analyzed_price"`
	ContributionMargin           decimal.Decimal  `json:"contribution_margin"`
	ContributionMarginPercentage decimal.Decimal  `json:"contribution_margin_percentage"`
	VariableCostsTotal           decimal.Decimal  `json:"variable_costs_total"`
	TaxAmount                    decimal.Decimal  `json:"tax_amount"`
	CardFeeAmount                decimal.Decimal  `json:"card_fee_amount"`
	BreakEvenUnits               *decimal.Decimal `json:"break_even_units"`   // null si no se alcanza
	BreakEvenRevenue             *decimal.Decimal `json:"break_even_revenue"` // null si no se alcanza
}

// ContributionMarginRequest entrada de POST /api/pricing/contribution-margin.
type ContributionMarginRequest struct {
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	VariableCost decimal.Decimal `json:"variable_cost" validate:"gte=0"`
}

// ContributionMarginResponse margen de contribución en porcentaje.
type ContributionMarginResponse struct {
	Price                        decimal.Decimal `json:"price"`
	VariableCost                 decimal.Decimal `json:"variable_cost"`
	ContributionMarginPercentage decimal.Decimal `json:"contribution_margin_percentage"`
}

// OrderTotalRequest entrada de POST /api/orders/total.
type OrderTotalRequest struct {
	Items         []OrderItemDTO  `json:"items" validate:"dive"`
	OrderDiscount decimal.Decimal `json:"order_discount" validate:"gte=0"`
}

// LineTotalDTO total de una línea de pedido.
type LineTotalDTO struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// OrderTotalResponse total del pedido con su desglose por línea.
type OrderTotalResponse struct {
	Lines         []LineTotalDTO  `json:"lines"`
	ItemsTotal    decimal.Decimal `json:"items_total"`
	OrderDiscount decimal.Decimal `json:"order_discount"`
	Total         decimal.Decimal `json:"total"`
}
