package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/service"
	"github.com/onurcolak/gateway-dashboard/internal/viewstate"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

type DeviceHandler struct {
	service *service.DeviceService
	views   *viewstate.Controller
}

func NewDeviceHandler(service *service.DeviceService, views *viewstate.Controller) *DeviceHandler {
	return &DeviceHandler{service: service, views: views}
}

// ListDevices godoc
// @Summary List devices
// @Tags devices
// @Produce json
// @Param x-view-id header string false "Dashboard view id"
// @Param search query string false "Matches name and phone number"
// @Param status query string false "all, online, offline, pairing, error"
// @Param sort query string false "name, status, lastConnection, messageCount"
// @Param dir query string false "asc or desc"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} response.ListResponse
// @Router /api/v1/devices [get]
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	q, err := listQuery(c, h.views, viewstate.ScreenDevices, "status")
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return writeListing(c, result)
}

// GetDevice godoc
// @Summary Get device details
// @Tags devices
// @Produce json
// @Param id path string true "Device ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/devices/{id} [get]
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	device, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, device)
}

// DisconnectDevice godoc
// @Summary Disconnect a device
// @Tags devices
// @Produce json
// @Param id path string true "Device ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/devices/{id}/disconnect [post]
func (h *DeviceHandler) DisconnectDevice(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Disconnect(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return response.OkWithMessage(c, "Disconnect requested", map[string]any{"id": id})
}

// RefreshDevices godoc
// @Summary Refresh the device list
// @Tags devices
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/devices/refresh [post]
func (h *DeviceHandler) RefreshDevices(c echo.Context) error {
	h.service.Refresh(c.Request().Context())
	return response.OkWithMessage(c, "Refresh requested", nil)
}
