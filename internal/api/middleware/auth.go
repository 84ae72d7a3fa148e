package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// RequesterHeader carries the id of the user a request acts for.
	RequesterHeader = "X-User-ID"
	// RequesterKey is the echo context key the requester id is stored under.
	RequesterKey = "requester_id"
)

// Requester rejects requests without a requester header and injects the id
// into the context. The id syntax is validated by the core, not here.
func Requester() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(RequesterHeader))
			if id == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing "+RequesterHeader+" header")
			}
			c.Set(RequesterKey, id)
			return next(c)
		}
	}
}
