package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/shell"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

// PageHandler serves the layout shell and its navigation.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// RenderPage renders the layout for a known section path. Unknown paths go
// back to the dashboard.
func (h *PageHandler) RenderPage(c echo.Context) error {
	section, ok := shell.Lookup(c.Request().URL.Path)
	if !ok {
		return c.Redirect(http.StatusFound, shell.HomePath)
	}

	collapsed, _ := strconv.ParseBool(c.QueryParam("collapsed"))
	return c.Render(http.StatusOK, "layout.html", shell.NewPage(section, collapsed))
}

// Fallback redirects every unknown GET path to the dashboard.
func (h *PageHandler) Fallback(c echo.Context) error {
	return c.Redirect(http.StatusFound, shell.HomePath)
}

// GetNavigation godoc
// @Summary Get the sidebar navigation
// @Description Sections with the one serving path marked active. An unknown path resolves to the dashboard.
// @Tags navigation
// @Produce json
// @Param path query string false "Current page path"
// @Param collapsed query bool false "Sidebar collapsed"
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/navigation [get]
func (h *PageHandler) GetNavigation(c echo.Context) error {
	section, ok := shell.Lookup(c.QueryParam("path"))
	if !ok {
		section, _ = shell.Lookup(shell.HomePath)
	}

	collapsed, _ := strconv.ParseBool(c.QueryParam("collapsed"))
	return response.Ok(c, shell.NewPage(section, collapsed))
}
