package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bandoggie/backend/internal/events"
	"github.com/bandoggie/backend/internal/logging"
	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/service"
	"github.com/bandoggie/backend/internal/tokens"
	"github.com/bandoggie/backend/internal/transport"
)

type PrincipalHTTP struct {
	Svc      *service.PrincipalService
	Verify   *service.VerificationService
	Producer *events.Producer
}

func (h *PrincipalHTTP) RegisterClient(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RegisterClientRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	client := &models.Client{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		ImageURL:  req.ImageURL,
	}
	if err := h.Svc.RegisterClient(ctx, client, req.Password); err != nil {
		return httpError(c, err)
	}

	ticket, err := h.Verify.IssueRegistrationTicket(ctx, client.Email, models.KindClient)
	if err != nil {
		return httpError(c, err)
	}
	c.SetCookie(tokens.CreateCookie(RegistrationCookie, ticket.Token, "/", ticket.ExpiresAt))

	h.publishRegistered(c, client.ID.String(), models.KindClient)
	return c.JSON(http.StatusCreated, client)
}

func (h *PrincipalHTTP) RegisterVet(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RegisterVetRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	vet := &models.Vet{
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
		NIT:      req.NIT,
	}
	if err := h.Svc.RegisterVet(ctx, vet, req.Password); err != nil {
		return httpError(c, err)
	}

	ticket, err := h.Verify.IssueRegistrationTicket(ctx, vet.Email, models.KindVet)
	if err != nil {
		return httpError(c, err)
	}
	c.SetCookie(tokens.CreateCookie(RegistrationCookie, ticket.Token, "/", ticket.ExpiresAt))

	h.publishRegistered(c, vet.ID.String(), models.KindVet)
	return c.JSON(http.StatusCreated, vet)
}

func (h *PrincipalHTTP) RegisterEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RegisterEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	employee := &models.Employee{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		DUI:   req.DUI,
		Role:  req.Role,
	}
	if err := h.Svc.RegisterEmployee(ctx, employee, req.Password); err != nil {
		return httpError(c, err)
	}

	h.publishRegistered(c, employee.ID.String(), models.KindEmployee)
	return c.JSON(http.StatusCreated, employee)
}

func (h *PrincipalHTTP) ListClients(c echo.Context) error {
	out, err := h.Svc.ListClients(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PrincipalHTTP) ListVets(c echo.Context) error {
	out, err := h.Svc.ListVets(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PrincipalHTTP) ListEmployees(c echo.Context) error {
	out, err := h.Svc.ListEmployees(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PrincipalHTTP) GetClient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.Svc.GetClient(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PrincipalHTTP) GetVet(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.Svc.GetVet(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PrincipalHTTP) GetEmployee(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.Svc.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PrincipalHTTP) UpdateClient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req transport.UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.BirthDate != nil {
		fields["birth_date"] = *req.BirthDate
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if err := h.Svc.UpdateClient(c.Request().Context(), id, fields); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "client updated"})
}

func (h *PrincipalHTTP) UpdateVet(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req transport.UpdateVetRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.NIT != nil {
		fields["nit"] = *req.NIT
	}
	if err := h.Svc.UpdateVet(c.Request().Context(), id, fields); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "vet updated"})
}

func (h *PrincipalHTTP) UpdateEmployee(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req transport.UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.DUI != nil {
		fields["dui"] = *req.DUI
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if err := h.Svc.UpdateEmployee(c.Request().Context(), id, fields); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "employee updated"})
}

func (h *PrincipalHTTP) DeleteClient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteClient(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PrincipalHTTP) DeleteVet(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteVet(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PrincipalHTTP) DeleteEmployee(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteEmployee(c.Request().Context(), id); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PrincipalHTTP) publishRegistered(c echo.Context, id, kind string) {
	ctx := c.Request().Context()
	event := map[string]any{
		"type":         events.TypePrincipalRegistered,
		"principal_id": id,
		"kind":         kind,
	}
	if err := h.Producer.Publish(ctx, id, event); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "type", events.TypePrincipalRegistered, "error", err)
	}
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
