package authmw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandoggie/backend/internal/models"
	"github.com/bandoggie/backend/internal/tokens"
)

const (
	// SessionCookie is the cookie name the login handler sets.
	SessionCookie = "authToken"

	ctxPrincipalID   = "principal_id"
	ctxPrincipalKind = "principal_kind"
)

type SessionMiddleware struct {
	Secret []byte
}

// RequireSession rejects the request unless a valid session cookie is
// present, and stashes the principal in the echo context.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "session token missing")
		}
		claims, err := tokens.SessionFromToken(cookie.Value, m.Secret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "session token expired or invalid")
		}
		c.Set(ctxPrincipalID, claims.Subject)
		c.Set(ctxPrincipalKind, claims.Kind)
		return next(c)
	}
}

// RequireEmployee additionally restricts the route to employee principals.
func (m *SessionMiddleware) RequireEmployee(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireSession(func(c echo.Context) error {
		if PrincipalKind(c) != models.KindEmployee {
			return echo.NewHTTPError(http.StatusForbidden, "employee access required")
		}
		return next(c)
	})
}

func PrincipalID(c echo.Context) string {
	if v, ok := c.Get(ctxPrincipalID).(string); ok {
		return v
	}
	return ""
}

func PrincipalKind(c echo.Context) string {
	if v, ok := c.Get(ctxPrincipalKind).(string); ok {
		return v
	}
	return ""
}
