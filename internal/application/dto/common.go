package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP. Fields lista los campos rechazados por la validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// CostingParamsDTO sobrescribe, para una sola petición, los parámetros de costeo configurados.
// Los campos nil conservan el valor por defecto del servidor.
type CostingParamsDTO struct {
	HourlyRate           *decimal.Decimal `json:"hourly_rate" validate:"omitempty,gte=0"`
	WorkingHoursPerMonth *decimal.Decimal `json:"working_hours_per_month" validate:"omitempty,gte=0"`
	TaxRate              *decimal.Decimal `json:"tax_rate" validate:"omitempty,gte=0,lt=100"`
	CardFeeRate          *decimal.Decimal `json:"card_fee_rate" validate:"omitempty,gte=0,lt=100"`
	FixedCosts           []map[string]any `json:"fixed_costs"` // valor bajo value, amount, valor o custo
}
