package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Atelie-api/internal/application/dto"
	"github.com/jhoicas/Atelie-api/internal/application/usecase"
)

// ReportsHandler endpoints de reportes financieros y analítica.
type ReportsHandler struct {
	uc *usecase.ReportsUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *usecase.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// FinancialSummary godoc
// @Summary      Resumen financiero
// @Description  Ingresos (suma de total_value, sin filtrar por estado), costos por componente, ganancia y margen.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OrdersRequest  true  "Pedidos"
// @Success      200   {object}  dto.FinancialSummaryResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/reports/financial-summary [post]
func (h *ReportsHandler) FinancialSummary(c *fiber.Ctx) error {
	var req dto.OrdersRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.FinancialSummary(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RevenueByPeriod godoc
// @Summary      Ingresos, costos y ganancia por mes
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OrdersRequest  true  "Pedidos"
// @Success      200   {array}   dto.PeriodSummaryDTO
// @Router       /api/reports/revenue-by-period [post]
func (h *ReportsHandler) RevenueByPeriod(c *fiber.Ctx) error {
	var req dto.OrdersRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.RevenueByPeriod(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Indicadores del dashboard
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DashboardRequest  true  "Pedidos e insumos"
// @Success      200   {object}  dto.DashboardMetricsDTO
// @Router       /api/analytics/dashboard [post]
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Dashboard(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// OrdersByStatus godoc
// @Summary      Pedidos agrupados por estado
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OrdersRequest  true  "Pedidos"
// @Success      200   {array}   dto.StatusBreakdownDTO
// @Router       /api/analytics/orders-by-status [post]
func (h *ReportsHandler) OrdersByStatus(c *fiber.Ctx) error {
	var req dto.OrdersRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.OrdersByStatus(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos con mayor ingreso
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        limit  query     int                false  "Máximo de productos (default configurado)"
// @Param        body   body      dto.OrdersRequest  true   "Pedidos"
// @Success      200    {array}   dto.TopProductDTO
// @Router       /api/analytics/top-products [post]
func (h *ReportsHandler) TopProducts(c *fiber.Ctx) error {
	var req dto.OrdersRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.TopProducts(c.UserContext(), req, c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FilterOrders godoc
// @Summary      Filtra pedidos por fecha de creación
// @Description  Usa "preset" (today, week, month, quarter, year) o start_date/end_date (RFC 3339). Extremos incluidos.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FilterOrdersRequest  true  "Pedidos y período"
// @Success      200   {object}  dto.FilterOrdersResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/analytics/orders/filter [post]
func (h *ReportsHandler) FilterOrders(c *fiber.Ctx) error {
	var req dto.FilterOrdersRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.FilterOrders(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DateRange godoc
// @Summary      Resuelve un período predefinido
// @Tags         analytics
// @Produce      json
// @Param        preset  path      string  true  "today, week, month, quarter o year"
// @Success      200     {object}  dto.DateRangeResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/analytics/date-range/{preset} [get]
func (h *ReportsHandler) DateRange(c *fiber.Ctx) error {
	out, err := h.uc.DateRange(c.UserContext(), c.Params("preset"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
