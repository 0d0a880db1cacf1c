package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/middlewares"
	"github.com/onurcolak/gateway-dashboard/internal/service"
	"github.com/onurcolak/gateway-dashboard/internal/viewstate"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

// CredentialHandler serves the API tab of the settings screen. Secret
// visibility is remembered per view.
type CredentialHandler struct {
	service *service.CredentialService
	views   *viewstate.Controller
}

func NewCredentialHandler(service *service.CredentialService, views *viewstate.Controller) *CredentialHandler {
	return &CredentialHandler{service: service, views: views}
}

type CredentialRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Permissions []string `json:"permissions" validate:"min=1,dive,permission"`
}

type CredentialActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ListCredentials godoc
// @Summary List API credentials
// @Tags credentials
// @Produce json
// @Param x-view-id header string false "Dashboard view id"
// @Param search query string false "Matches name and key"
// @Param active query string false "all, true, false"
// @Param sort query string false "name, created, lastUsed"
// @Param dir query string false "asc or desc"
// @Success 200 {object} response.ListResponse
// @Router /api/v1/credentials [get]
func (h *CredentialHandler) ListCredentials(c echo.Context) error {
	q, err := listQuery(c, h.views, viewstate.ScreenCredentials, "active")
	if err != nil {
		return respondError(c, err)
	}

	state, err := h.state(c)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.service.List(c.Request().Context(), q, state.Revealed)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return writeListing(c, result)
}

// CreateCredential godoc
// @Summary Create an API credential
// @Description The response carries the new secret in clear text.
// @Tags credentials
// @Accept json
// @Produce json
// @Param request body CredentialRequest true "Credential form"
// @Success 201 {object} response.SuccessResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/credentials [post]
func (h *CredentialHandler) CreateCredential(c echo.Context) error {
	var req CredentialRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	row, err := h.service.Create(c.Request().Context(), service.CredentialInput{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		return respondError(c, err)
	}

	completeView(c, h.views, viewstate.ScreenCredentials)

	return response.Created(c, "Credential created", row)
}

// RevokeCredential godoc
// @Summary Revoke an API credential
// @Tags credentials
// @Produce json
// @Param id path string true "Credential ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/credentials/{id} [delete]
func (h *CredentialHandler) RevokeCredential(c echo.Context) error {
	if err := h.service.Revoke(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return response.NoContent(c)
}

// RegenerateCredential godoc
// @Summary Regenerate key and secret
// @Tags credentials
// @Produce json
// @Param id path string true "Credential ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/credentials/{id}/regenerate [post]
func (h *CredentialHandler) RegenerateCredential(c echo.Context) error {
	row, err := h.service.Regenerate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.OkWithMessage(c, "Credential regenerated", row)
}

// SetCredentialActive godoc
// @Summary Enable or disable a credential
// @Tags credentials
// @Accept json
// @Produce json
// @Param id path string true "Credential ID"
// @Param request body CredentialActiveRequest true "Active flag"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/credentials/{id}/active [put]
func (h *CredentialHandler) SetCredentialActive(c echo.Context) error {
	var req CredentialActiveRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	state, err := h.state(c)
	if err != nil {
		return respondError(c, err)
	}

	id := c.Param("id")
	row, err := h.service.SetActive(c.Request().Context(), id, *req.Active, state.Revealed(id))
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, row)
}

// ToggleSecret godoc
// @Summary Show or hide a credential secret
// @Description Flips the secret visibility for the calling view only.
// @Tags credentials
// @Produce json
// @Param x-view-id header string false "Dashboard view id"
// @Param id path string true "Credential ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/credentials/{id}/secret [post]
func (h *CredentialHandler) ToggleSecret(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if _, err := h.service.Get(ctx, id, false); err != nil {
		return respondError(c, err)
	}

	state, err := h.views.ToggleSecret(ctx, middlewares.GetViewID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	row, err := h.service.Get(ctx, id, state.Revealed(id))
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, row)
}

// ListPermissions godoc
// @Summary List credential permissions
// @Tags credentials
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/credentials/permissions [get]
func (h *CredentialHandler) ListPermissions(c echo.Context) error {
	return response.Ok(c, h.service.Permissions())
}

func (h *CredentialHandler) state(c echo.Context) (viewstate.State, error) {
	return h.views.State(c.Request().Context(), middlewares.GetViewID(c), viewstate.ScreenCredentials)
}
