package dto

import "github.com/shopspring/decimal"

// StockRequest movimientos (y, para alertas, los insumos) a reducir.
type StockRequest struct {
	Movements []StockMovementDTO `json:"movements" validate:"dive"`
	Materials []MaterialDTO      `json:"materials" validate:"dive"`
}

// StockBalanceDTO saldo por insumo y color. Color null = variante por defecto.
type StockBalanceDTO struct {
	MaterialID string          `json:"material_id"`
	Color      *string         `json:"color"`
	Balance    decimal.Decimal `json:"balance"`
}

// StockReportResponse saldos y cantidad de movimientos con tipo desconocido (ignorados).
type StockReportResponse struct {
	Balances         []StockBalanceDTO `json:"balances"`
	UnknownMovements int               `json:"unknown_movements"`
}

// StockAlertDTO alerta de stock bajo.
type StockAlertDTO struct {
	ID              string          `json:"id"`
	MaterialID      string          `json:"material_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Color           *string         `json:"color"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
	Severity        string          `json:"severity"` // critical, high, medium
}

// StockAlertsResponse alertas ordenadas por gravedad.
type StockAlertsResponse struct {
	Alerts []StockAlertDTO `json:"alerts"`
}
