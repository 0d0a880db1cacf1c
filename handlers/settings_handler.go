package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/forms"
	"github.com/onurcolak/gateway-dashboard/internal/service"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

type SettingsHandler struct {
	service *service.SettingsService
}

func NewSettingsHandler(service *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// UpdateFieldRequest moves one numeric setting. Value is read for the
// slider, Text for the text box.
type UpdateFieldRequest struct {
	Source string  `json:"source" validate:"required,oneof=slider text"`
	Value  float64 `json:"value"`
	Text   string  `json:"text" validate:"required_if=Source text"`
}

// GetSystemSettings godoc
// @Summary Get system parameters
// @Tags settings
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/settings/system [get]
func (h *SettingsHandler) GetSystemSettings(c echo.Context) error {
	return response.Ok(c, h.service.System(c.Request().Context()))
}

// SaveSystemSettings godoc
// @Summary Save system parameters
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.SystemParameters true "System parameters"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/settings/system [put]
func (h *SettingsHandler) SaveSystemSettings(c echo.Context) error {
	var req domain.SystemParameters
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return response.OkWithMessage(c, "System settings saved", h.service.SaveSystem(c.Request().Context(), req))
}

// GetNotificationSettings godoc
// @Summary Get notification settings
// @Tags settings
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/settings/notifications [get]
func (h *SettingsHandler) GetNotificationSettings(c echo.Context) error {
	return response.Ok(c, h.service.Notifications(c.Request().Context()))
}

// SaveNotificationSettings godoc
// @Summary Save notification settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.NotificationSettings true "Notification settings"
// @Success 200 {object} response.SuccessResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/settings/notifications [put]
func (h *SettingsHandler) SaveNotificationSettings(c echo.Context) error {
	var req domain.NotificationSettings
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return response.OkWithMessage(c, "Notification settings saved", h.service.SaveNotifications(c.Request().Context(), req))
}

// ListSystemFields godoc
// @Summary Get the numeric system fields
// @Description Slider and text state of retention, rate limit and max file size.
// @Tags settings
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/settings/system/fields [get]
func (h *SettingsHandler) ListSystemFields(c echo.Context) error {
	return response.Ok(c, h.service.Fields(c.Request().Context()))
}

// UpdateSystemField godoc
// @Summary Move a numeric system field
// @Description Slider input snaps to the step; text input is clamped only.
// @Tags settings
// @Accept json
// @Produce json
// @Param field path string true "messageRetention, rateLimit or maxFileSize"
// @Param request body UpdateFieldRequest true "New value"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/settings/system/fields/{field} [patch]
func (h *SettingsHandler) UpdateSystemField(c echo.Context) error {
	var req UpdateFieldRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	field, err := h.service.UpdateField(c.Request().Context(), c.Param("field"), forms.Source(req.Source), req.Text, req.Value)
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, field)
}

// ResetSettings godoc
// @Summary Reset settings to defaults
// @Tags settings
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/settings/reset [post]
func (h *SettingsHandler) ResetSettings(c echo.Context) error {
	return response.OkWithMessage(c, "Settings reset to defaults", h.service.Reset(c.Request().Context()))
}
