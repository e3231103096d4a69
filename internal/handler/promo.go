package handler

import (
	"net/http"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
)

type PromoHandler struct {
	promoService service.PromoService
}

func NewPromoHandler(promoService service.PromoService) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

func (h *PromoHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PromoCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	promo, err := h.promoService.Create(ctx, &req)
	if err != nil {
		return mapServiceError(err, "Promo code not found")
	}

	return c.JSON(http.StatusOK, promo)
}

func (h *PromoHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	promos, err := h.promoService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, promos)
}

func (h *PromoHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PromoCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	promo, err := h.promoService.Update(ctx, c.Param("id"), &req)
	if err != nil {
		return mapServiceError(err, "Promo code not found")
	}

	return c.JSON(http.StatusOK, promo)
}

func (h *PromoHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.promoService.Delete(ctx, c.Param("id")); err != nil {
		return mapServiceError(err, "Promo code not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Promo code deleted",
	})
}

func (h *PromoHandler) Validate(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PromoValidateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.promoService.Validate(ctx, req.Code, req.OrderTotal)
	if err != nil {
		return mapServiceError(err, "Invalid promo code")
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PromoHandler) Apply(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.promoService.Apply(ctx, c.Param("code")); err != nil {
		return mapServiceError(err, "Promo code not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Promo code applied",
	})
}
