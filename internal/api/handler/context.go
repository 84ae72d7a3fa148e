package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hunnisme/NT106-Projects/internal/api/middleware"
)

// requesterID returns the id injected by the Requester middleware. Its
// absence means the route was mounted without the middleware.
func requesterID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.RequesterKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing requester identity")
	}
	return id, nil
}

// bindAndValidate decodes the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
