package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandoggie/backend/internal/events"
	"github.com/bandoggie/backend/internal/logging"
	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/service"
	"github.com/bandoggie/backend/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	order, err := h.Svc.CreateOrder(ctx, req.CartID, req.DeliveryAddress, req.PaymentMethod)
	if err != nil {
		return httpError(c, err)
	}

	h.publishCreated(c, order)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.Svc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	orders, err := h.Svc.ListOrders(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	order, err := h.Svc.UpdateOrder(ctx, id, req.CartID, req.DeliveryAddress, req.PaymentMethod)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteOrder(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHTTP) ListByPayment(c echo.Context) error {
	orders, err := h.Svc.ListByPayment(c.Request().Context(), c.Param("method"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) ListByDateRange(c echo.Context) error {
	orders, err := h.Svc.ListByDateRange(c.Request().Context(), c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) Stats(c echo.Context) error {
	stats, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *OrderHTTP) publishCreated(c echo.Context, order *models.Order) {
	ctx := c.Request().Context()
	event := map[string]any{
		"type":           events.TypeOrderCreated,
		"order_id":       order.ID.String(),
		"cart_id":        order.CartID.String(),
		"payment_method": order.PaymentMethod,
	}
	if err := h.Producer.Publish(ctx, order.ID.String(), event); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "type", events.TypeOrderCreated, "error", err)
	}
}
