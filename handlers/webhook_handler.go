package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/service"
	"github.com/onurcolak/gateway-dashboard/internal/viewstate"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

type WebhookHandler struct {
	service *service.WebhookService
	views   *viewstate.Controller
}

func NewWebhookHandler(service *service.WebhookService, views *viewstate.Controller) *WebhookHandler {
	return &WebhookHandler{service: service, views: views}
}

type WebhookRequest struct {
	URL         string   `json:"url" validate:"required,url"`
	Description string   `json:"description" validate:"max=500"`
	EventTypes  []string `json:"eventTypes" validate:"min=1,dive,eventtype"`
}

type TestWebhookRequest struct {
	URL string `json:"url"`
}

// ListWebhooks godoc
// @Summary List webhooks
// @Tags webhooks
// @Produce json
// @Param x-view-id header string false "Dashboard view id"
// @Param search query string false "Matches URL, description and events"
// @Param status query string false "all, active, inactive, error"
// @Param sort query string false "url, status, lastTriggered"
// @Param dir query string false "asc or desc"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} response.ListResponse
// @Router /api/v1/webhooks [get]
func (h *WebhookHandler) ListWebhooks(c echo.Context) error {
	q, err := listQuery(c, h.views, viewstate.ScreenWebhooks, "status")
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return writeListing(c, result)
}

// GetWebhook godoc
// @Summary Get a webhook
// @Tags webhooks
// @Produce json
// @Param id path string true "Webhook ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/webhooks/{id} [get]
func (h *WebhookHandler) GetWebhook(c echo.Context) error {
	row, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, row)
}

// CreateWebhook godoc
// @Summary Add a webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body WebhookRequest true "Webhook form"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/webhooks [post]
func (h *WebhookHandler) CreateWebhook(c echo.Context) error {
	var req WebhookRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	row, err := h.service.Create(c.Request().Context(), req.input())
	if err != nil {
		return respondError(c, err)
	}

	completeView(c, h.views, viewstate.ScreenWebhooks)

	return response.Created(c, "Webhook created", row)
}

// UpdateWebhook godoc
// @Summary Edit a webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param id path string true "Webhook ID"
// @Param request body WebhookRequest true "Webhook form"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/webhooks/{id} [put]
func (h *WebhookHandler) UpdateWebhook(c echo.Context) error {
	var req WebhookRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	row, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return respondError(c, err)
	}

	completeView(c, h.views, viewstate.ScreenWebhooks)

	return response.OkWithMessage(c, "Webhook updated", row)
}

// DeleteWebhook godoc
// @Summary Delete a webhook
// @Tags webhooks
// @Produce json
// @Param id path string true "Webhook ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/webhooks/{id} [delete]
func (h *WebhookHandler) DeleteWebhook(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return response.NoContent(c)
}

// TestWebhook godoc
// @Summary Test a webhook URL
// @Description Probes the URL, simulated or live depending on configuration.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body TestWebhookRequest true "URL to probe"
// @Success 200 {object} response.SuccessResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/webhooks/test [post]
func (h *WebhookHandler) TestWebhook(c echo.Context) error {
	var req TestWebhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	result, err := h.service.Test(c.Request().Context(), req.URL)
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, result)
}

// ListEventTypes godoc
// @Summary List webhook event types
// @Tags webhooks
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/webhooks/event-types [get]
func (h *WebhookHandler) ListEventTypes(c echo.Context) error {
	return response.Ok(c, h.service.EventTypes())
}

func (r WebhookRequest) input() service.WebhookInput {
	return service.WebhookInput{
		URL:         r.URL,
		Description: r.Description,
		Events:      r.EventTypes,
	}
}
