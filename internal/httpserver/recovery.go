package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandoggie/backend/internal/service"
	"github.com/bandoggie/backend/internal/tokens"
	"github.com/bandoggie/backend/internal/transport"
)

// Ticket cookies. The verification flow has no server-side state: the signed
// cookie is the whole flow record.
const (
	RecoveryCookie     = "recoveryToken"
	RegistrationCookie = "registerToken"
)

type RecoveryHTTP struct {
	Svc *service.VerificationService
}

func (h *RecoveryHTTP) RequestCode(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RequestCodeRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	ticket, err := h.Svc.RequestRecoveryCode(ctx, req.Email)
	if err != nil {
		return httpError(c, err)
	}

	c.SetCookie(tokens.CreateCookie(RecoveryCookie, ticket.Token, "/", ticket.ExpiresAt))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "verification code sent"})
}

func (h *RecoveryHTTP) VerifyCode(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	raw := cookieValue(c, RecoveryCookie)
	ticket, err := h.Svc.VerifyRecoveryCode(ctx, raw, req.Code)
	if err != nil {
		return httpError(c, err)
	}

	c.SetCookie(tokens.CreateCookie(RecoveryCookie, ticket.Token, "/", ticket.ExpiresAt))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "code verified"})
}

func (h *RecoveryHTTP) NewPassword(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.NewPasswordRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	raw := cookieValue(c, RecoveryCookie)
	if err := h.Svc.ApplyNewPassword(ctx, raw, req.NewPassword); err != nil {
		return httpError(c, err)
	}

	c.SetCookie(tokens.DeleteCookie(RecoveryCookie, "/"))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "password updated"})
}

// ConfirmEmail terminates the registration flow: one matching check both
// confirms and consumes the ticket.
func (h *RecoveryHTTP) ConfirmEmail(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	raw := cookieValue(c, RegistrationCookie)
	if err := h.Svc.ConfirmEmail(ctx, raw, req.Code); err != nil {
		return httpError(c, err)
	}

	c.SetCookie(tokens.DeleteCookie(RegistrationCookie, "/"))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "email confirmed"})
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
