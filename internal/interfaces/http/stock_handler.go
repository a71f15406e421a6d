package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Atelie-api/internal/application/dto"
	"github.com/jhoicas/Atelie-api/internal/application/usecase"
)

// StockHandler endpoints de saldos y alertas de stock.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Report godoc
// @Summary      Saldo por insumo y color
// @Description  Suma entradas (ENTRADA, ENTRADA_AJUSTE) y resta salidas (SAIDA, SAIDA_AJUSTE, PERDA, RETIRADA).
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockRequest  true  "Movimientos"
// @Success      200   {object}  dto.StockReportResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/report [post]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	var req dto.StockRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Report(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de stock bajo por color
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockRequest  true  "Insumos y movimientos"
// @Success      200   {object}  dto.StockAlertsResponse
// @Router       /api/stock/alerts [post]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	var req dto.StockRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Alerts(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
