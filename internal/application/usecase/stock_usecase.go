package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jhoicas/Atelie-api/internal/application/dto"
	"github.com/jhoicas/Atelie-api/internal/domain/stock"
	"github.com/jhoicas/Atelie-api/pkg/logger"
)

// StockUseCase saldos y alertas de stock a partir de movimientos ya cargados.
type StockUseCase struct {
	log *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(log *logger.Logger) *StockUseCase {
	return &StockUseCase{log: log.Component("stock")}
}

// Report saldo final por insumo y color.
func (uc *StockUseCase) Report(ctx context.Context, in dto.StockRequest) (*dto.StockReportResponse, error) {
	_, span := startSpan(ctx, "stock.report", attribute.Int("movements", len(in.Movements)))
	defer span.End()

	movements := toMovements(in.Movements)
	balances := stock.Reduce(movements)
	unknown := stock.UnknownMovements(movements)
	if unknown > 0 {
		uc.log.Warn().Int("movements", unknown).Msg("movimientos con tipo desconocido ignorados")
	}

	out := make([]dto.StockBalanceDTO, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.StockBalanceDTO{MaterialID: b.MaterialID, Color: b.Color, Balance: b.Balance})
	}
	return &dto.StockReportResponse{Balances: out, UnknownMovements: unknown}, nil
}

// Alerts variantes con saldo <= mínimo, ordenadas por gravedad.
func (uc *StockUseCase) Alerts(ctx context.Context, in dto.StockRequest) (*dto.StockAlertsResponse, error) {
	_, span := startSpan(ctx, "stock.alerts",
		attribute.Int("movements", len(in.Movements)),
		attribute.Int("materials", len(in.Materials)))
	defer span.End()

	alerts := stock.Alerts(toMaterials(in.Materials), toMovements(in.Movements))
	uc.log.Debug().Int("alerts", len(alerts)).Msg("alertas de stock calculadas")

	out := make([]dto.StockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.StockAlertDTO{
			ID:              a.ID,
			MaterialID:      a.MaterialID,
			Name:            a.Name,
			Unit:            a.Unit,
			Color:           a.Color,
			CurrentQuantity: a.CurrentQuantity,
			MinQuantity:     a.MinQuantity,
			Severity:        string(a.Severity),
		})
	}
	return &dto.StockAlertsResponse{Alerts: out}, nil
}
