package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Atelie-api/internal/application/dto"
	"github.com/jhoicas/Atelie-api/internal/application/usecase"
)

// PricingHandler endpoints de precio sugerido, margen de contribución y total de pedido.
type PricingHandler struct {
	uc *usecase.PricingUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// SuggestedPrice godoc
// @Summary      Precio sugerido de un producto
// @Description  Costo de materiales, mano de obra y costos fijos prorrateados, precio sugerido
//               según el margen y análisis de contribución. "costing" sobrescribe los parámetros del servidor.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SuggestedPriceRequest  true  "Producto con ficha técnica"
// @Success      200   {object}  dto.PriceCalculationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pricing/suggested-price [post]
func (h *PricingHandler) SuggestedPrice(c *fiber.Ctx) error {
	var req dto.SuggestedPriceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.SuggestedPrice(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ContributionMargin godoc
// @Summary      Margen de contribución (%)
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ContributionMarginRequest  true  "Precio y costo variable"
// @Success      200   {object}  dto.ContributionMarginResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pricing/contribution-margin [post]
func (h *PricingHandler) ContributionMargin(c *fiber.Ctx) error {
	var req dto.ContributionMarginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.ContributionMargin(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// OrderTotal godoc
// @Summary      Total de un pedido
// @Description  Aplica el descuento por unidad de cada línea y luego el descuento del pedido. Nunca negativo.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OrderTotalRequest  true  "Líneas y descuento"
// @Success      200   {object}  dto.OrderTotalResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/total [post]
func (h *PricingHandler) OrderTotal(c *fiber.Ctx) error {
	var req dto.OrderTotalRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.OrderTotal(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
