package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/service"
	"github.com/bandoggie/backend/internal/transport"
)

type ReviewHTTP struct {
	Svc *service.ReviewService
}

func (h *ReviewHTTP) CreateReview(c echo.Context) error {
	var req transport.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	review := &models.Review{
		ProductID: req.ProductID,
		ClientID:  req.ClientID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.Svc.CreateReview(c.Request().Context(), review); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHTTP) ListReviews(c echo.Context) error {
	if q := c.QueryParam("product_id"); q != "" {
		productID, err := uuid.Parse(q)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		out, err := h.Svc.ListByProduct(c.Request().Context(), productID)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}

	out, err := h.Svc.ListReviews(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHTTP) UpdateReview(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Rating  *int    `json:"rating"`
		Comment *string `json:"comment"`
	}
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	fields := map[string]any{}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Comment != nil {
		fields["comment"] = *req.Comment
	}
	if err := h.Svc.UpdateReview(c.Request().Context(), id, fields); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "review updated"})
}

func (h *ReviewHTTP) DeleteReview(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteReview(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
