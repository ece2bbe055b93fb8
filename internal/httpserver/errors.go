package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandoggie/backend/internal/logging"
	"github.com/bandoggie/backend/internal/service"
)

// httpError maps a service error category onto an HTTP status. Infrastructure
// failures are logged with full detail and returned opaque.
func httpError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	logging.FromContext(c.Request().Context()).Error("internal error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}

func bindError() error {
	return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
}
