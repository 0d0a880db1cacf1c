package middlewares

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

const (
	ViewIDHeader = "x-view-id"

	viewIDContextKey = "viewID"
	maxViewIDLength  = 64
)

// ViewID scopes every request to one dashboard view. A request without the
// header starts a new view; the id is echoed so the client can keep it.
func ViewID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(ViewIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			if len(id) > maxViewIDLength || strings.ContainsAny(id, ": \t") {
				return response.BadRequestWithMessage(c, "invalid "+ViewIDHeader+" header")
			}

			c.Set(viewIDContextKey, id)
			c.Response().Header().Set(ViewIDHeader, id)

			return next(c)
		}
	}
}

// GetViewID returns the view id set by ViewID, or "" outside that middleware.
func GetViewID(c echo.Context) string {
	id, _ := c.Get(viewIDContextKey).(string)
	return id
}
