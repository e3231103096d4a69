package handler

import (
	"log"
	"net/http"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.paymentService.CreatePaymentIntent(ctx, &req)
	if err != nil {
		log.Println("create payment intent:", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating payment intent")
	}

	return c.JSON(http.StatusOK, result)
}
