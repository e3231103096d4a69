package handler

import (
	"fmt"
	"net/http"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.orderService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.Get(ctx, c.Param("id"))
	if err != nil {
		return mapServiceError(err, "Order not found")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.OrderStatusUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.orderService.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return mapServiceError(err, "Order not found")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Refund(c echo.Context) error {
	ctx := c.Request().Context()
	orderID := c.Param("id")

	if err := h.orderService.Refund(ctx, orderID); err != nil {
		return mapServiceError(err, "Order not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Order %s has been refunded", orderID),
		"orderId": orderID,
	})
}

func (h *OrderHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	orderID := c.Param("id")

	if err := h.orderService.Delete(ctx, orderID); err != nil {
		return mapServiceError(err, "Order not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Order %s has been deleted", orderID),
		"orderId": orderID,
	})
}
