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

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) CreateCart(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateCartRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	cart, err := h.Svc.CreateCart(ctx, req.ClientID, itemsFromDTO(req.Items))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, cart)
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cart, err := h.Svc.GetCart(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) ListCarts(c echo.Context) error {
	carts, err := h.Svc.ListCarts(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, carts)
}

func (h *CartHTTP) UpdateCart(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	var items []models.CartItem
	if req.Items != nil {
		items = itemsFromDTO(req.Items)
	}

	cart, err := h.Svc.UpdateCart(ctx, id, items, req.Status)
	if err != nil {
		return httpError(c, err)
	}

	if req.Status == models.CartStatusPaid {
		h.publishPaid(c, cart)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req transport.CartItemDTO
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	cart, err := h.Svc.AddLineItem(ctx, id, itemFromDTO(req))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	cart, err := h.Svc.RemoveLineItem(c.Request().Context(), id, productID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) Clear(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cart, err := h.Svc.Clear(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) DeleteCart(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteCart(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) Stats(c echo.Context) error {
	stats, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *CartHTTP) publishPaid(c echo.Context, cart *models.Cart) {
	ctx := c.Request().Context()
	event := map[string]any{
		"type":    events.TypeCartPaid,
		"cart_id": cart.ID.String(),
		"total":   cart.Total,
	}
	if err := h.Producer.Publish(ctx, cart.ID.String(), event); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "type", events.TypeCartPaid, "error", err)
	}
}

func itemsFromDTO(in []transport.CartItemDTO) []models.CartItem {
	out := make([]models.CartItem, len(in))
	for i, dto := range in {
		out[i] = itemFromDTO(dto)
	}
	return out
}

func itemFromDTO(dto transport.CartItemDTO) models.CartItem {
	return models.CartItem{
		ProductID:    dto.ProductID,
		Quantity:     dto.Quantity,
		UnitSubtotal: dto.UnitSubtotal,
		Size:         dto.Size,
	}
}
