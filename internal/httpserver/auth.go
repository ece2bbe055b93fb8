package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/bandoggie/backend/internal/middleware/auth"
	"github.com/bandoggie/backend/internal/service"
	"github.com/bandoggie/backend/internal/tokens"
	"github.com/bandoggie/backend/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httpError(c, err)
	}

	c.SetCookie(tokens.CreateCookie(authmw.SessionCookie, res.Token, "/", res.ExpiresAt))

	return c.JSON(http.StatusOK, transport.LoginResponse{
		Message:  "login successful",
		UserType: res.Principal.Kind,
		Token:    res.Token,
		User: transport.LoginUserDTO{
			ID:    res.Principal.ID,
			Email: res.Principal.Email,
		},
	})
}

// Logout is stateless: the bearer cookie is cleared, nothing is revoked
// server-side.
func (h *AuthHTTP) Logout(c echo.Context) error {
	c.SetCookie(tokens.DeleteCookie(authmw.SessionCookie, "/"))
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "logged out"})
}
