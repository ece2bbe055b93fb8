package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/service"
	"github.com/bandoggie/backend/internal/transport"
)

type GuestHTTP struct {
	Svc *service.GuestService
}

func (h *GuestHTTP) CreateRetailGuest(c echo.Context) error {
	var req transport.GuestRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	guest := &models.RetailGuest{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := h.Svc.CreateRetailGuest(c.Request().Context(), guest); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, guest)
}

func (h *GuestHTTP) ListRetailGuests(c echo.Context) error {
	out, err := h.Svc.ListRetailGuests(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuestHTTP) DeleteRetailGuest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteRetailGuest(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *GuestHTTP) CreateWholesaleGuest(c echo.Context) error {
	var req transport.GuestRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	guest := &models.WholesaleGuest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		NIT:     req.NIT,
	}
	if err := h.Svc.CreateWholesaleGuest(c.Request().Context(), guest); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, guest)
}

func (h *GuestHTTP) ListWholesaleGuests(c echo.Context) error {
	out, err := h.Svc.ListWholesaleGuests(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuestHTTP) DeleteWholesaleGuest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteWholesaleGuest(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
