package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/middlewares"
	"github.com/onurcolak/gateway-dashboard/internal/viewstate"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

// ViewHandler exposes the per-view screen state: which sub-view is shown,
// the list query, and the selected tab.
type ViewHandler struct {
	views *viewstate.Controller
}

func NewViewHandler(views *viewstate.Controller) *ViewHandler {
	return &ViewHandler{views: views}
}

// GetViewState godoc
// @Summary Get a screen's view state
// @Tags views
// @Produce json
// @Param x-view-id header string false "Dashboard view id"
// @Param screen path string true "messages, devices, webhooks, credentials, settings, analytics"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/views/{screen} [get]
func (h *ViewHandler) GetViewState(c echo.Context) error {
	screen, err := viewstate.ParseScreen(c.Param("screen"))
	if err != nil {
		return respondError(c, err)
	}

	state, err := h.views.State(c.Request().Context(), middlewares.GetViewID(c), screen)
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, state)
}

// ApplyAction godoc
// @Summary Navigate within a screen
// @Description Runs view, add, edit, compose, cancel, back, complete or tab. An action the current view does not allow is rejected and the state is kept.
// @Tags views
// @Accept json
// @Produce json
// @Param x-view-id header string false "Dashboard view id"
// @Param screen path string true "Screen"
// @Param request body viewstate.Action true "Action"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/v1/views/{screen}/actions [post]
func (h *ViewHandler) ApplyAction(c echo.Context) error {
	screen, err := viewstate.ParseScreen(c.Param("screen"))
	if err != nil {
		return respondError(c, err)
	}

	var action viewstate.Action
	if ok, err := bindAndValidate(c, &action); !ok {
		return err
	}

	state, err := h.views.Apply(c.Request().Context(), middlewares.GetViewID(c), screen, action)
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, state)
}

// ToggleSort godoc
// @Summary Toggle a column sort
// @Description The active column flips direction; another column becomes active, descending.
// @Tags views
// @Produce json
// @Param x-view-id header string false "Dashboard view id"
// @Param screen path string true "Screen"
// @Param field path string true "Column"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/views/{screen}/sort/{field} [post]
func (h *ViewHandler) ToggleSort(c echo.Context) error {
	screen, err := viewstate.ParseScreen(c.Param("screen"))
	if err != nil {
		return respondError(c, err)
	}

	state, err := h.views.ToggleSort(c.Request().Context(), middlewares.GetViewID(c), screen, c.Param("field"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, state)
}

// ForgetView godoc
// @Summary Drop every screen state of the view
// @Tags views
// @Param x-view-id header string true "Dashboard view id"
// @Success 204
// @Router /api/v1/views [delete]
func (h *ViewHandler) ForgetView(c echo.Context) error {
	h.views.Forget(c.Request().Context(), middlewares.GetViewID(c))
	return response.NoContent(c)
}
