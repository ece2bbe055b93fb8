package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/service"
	"github.com/bandoggie/backend/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	p := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	}
	if err := h.Svc.CreateProduct(c.Request().Context(), p); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.Svc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	if q := c.QueryParam("category_id"); q != "" {
		categoryID, err := uuid.Parse(q)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category_id")
		}
		out, err := h.Svc.ListProductsByCategory(c.Request().Context(), categoryID)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}

	out, err := h.Svc.ListProducts(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	fields := map[string]any{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if !req.Price.IsZero() {
		fields["price"] = req.Price
	}
	if req.ImageURL != "" {
		fields["image_url"] = req.ImageURL
	}

	p, err := h.Svc.UpdateProduct(c.Request().Context(), id, fields)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteProduct(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	from, _ := strconv.Atoi(c.QueryParam("from"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	total, items, err := h.Svc.SearchProducts(c.Request().Context(), c.QueryParam("q"), from, size)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, transport.SearchResponse{Total: total, Items: items})
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	var cat models.Category
	if err := c.Bind(&cat); err != nil {
		return bindError()
	}
	if err := h.Svc.CreateCategory(c.Request().Context(), &cat); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *CatalogHTTP) ListCategories(c echo.Context) error {
	out, err := h.Svc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHTTP) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	fields := map[string]any{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if err := h.Svc.UpdateCategory(c.Request().Context(), id, fields); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "category updated"})
}

func (h *CatalogHTTP) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteCategory(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHTTP) CreateHoliday(c echo.Context) error {
	var req struct {
		Name string    `json:"name"`
		Date time.Time `json:"date"`
	}
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	holiday := &models.Holiday{Name: req.Name, Date: req.Date}
	if err := h.Svc.CreateHoliday(c.Request().Context(), holiday); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, holiday)
}

func (h *CatalogHTTP) ListHolidays(c echo.Context) error {
	out, err := h.Svc.ListHolidays(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHTTP) UpdateHoliday(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Name string     `json:"name"`
		Date *time.Time `json:"date"`
	}
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	fields := map[string]any{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Date != nil {
		fields["date"] = req.Date.UTC().Truncate(24 * time.Hour)
	}
	if err := h.Svc.UpdateHoliday(c.Request().Context(), id, fields); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "holiday updated"})
}

func (h *CatalogHTTP) DeleteHoliday(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteHoliday(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
