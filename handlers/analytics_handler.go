package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/service"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	overview  *service.OverviewService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService, overview *service.OverviewService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, overview: overview}
}

type RangeRequest struct {
	Preset string `json:"preset" validate:"omitempty,oneof=today yesterday last7Days last30Days thisMonth lastMonth custom"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// GetReport godoc
// @Summary Get the analytics report
// @Description Volume, delivery and engagement for a preset or a custom range. Defaults to the last 7 days.
// @Tags analytics
// @Produce json
// @Param preset query string false "today, yesterday, last7Days, last30Days, thisMonth, lastMonth, custom"
// @Param from query string false "Custom range start"
// @Param to query string false "Custom range end"
// @Success 200 {object} response.SuccessResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/analytics [get]
func (h *AnalyticsHandler) GetReport(c echo.Context) error {
	report, err := h.analytics.Report(c.Request().Context(), selection(c))
	if err != nil {
		return respondError(c, err)
	}
	return response.Ok(c, report)
}

// ChangeRange godoc
// @Summary Change the analytics date range
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body RangeRequest true "Preset or custom range"
// @Success 200 {object} response.SuccessResponse
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/analytics/range [put]
func (h *AnalyticsHandler) ChangeRange(c echo.Context) error {
	var req RangeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	preset, r, err := h.analytics.ChangeRange(c.Request().Context(), service.Selection{
		Preset: req.Preset,
		From:   req.From,
		To:     req.To,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Ok(c, map[string]any{"preset": preset, "range": r})
}

// ResetRange godoc
// @Summary Reset the analytics date range
// @Description Goes back to the last 7 days.
// @Tags analytics
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/analytics/range [delete]
func (h *AnalyticsHandler) ResetRange(c echo.Context) error {
	preset, r := h.analytics.ResetRange(c.Request().Context())
	return response.Ok(c, map[string]any{"preset": preset, "range": r})
}

// ExportReport godoc
// @Summary Export the message volume as CSV
// @Tags analytics
// @Produce text/csv
// @Param preset query string false "Date preset"
// @Param from query string false "Custom range start"
// @Param to query string false "Custom range end"
// @Success 200 {string} string "CSV file"
// @Failure 422 {object} validator.ValidationErrorResponse
// @Router /api/v1/analytics/export [get]
func (h *AnalyticsHandler) ExportReport(c echo.Context) error {
	body, r, err := h.analytics.Export(c.Request().Context(), selection(c))
	if err != nil {
		return respondError(c, err)
	}

	filename := fmt.Sprintf("message-volume-%s-%s.csv", r.From.Format("20060102"), r.To.Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", body)
}

// GetOverview godoc
// @Summary Get the dashboard overview
// @Description Stat cards and recent activity for the landing page.
// @Tags analytics
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/overview [get]
func (h *AnalyticsHandler) GetOverview(c echo.Context) error {
	overview, err := h.overview.Overview(c.Request().Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}
	return response.Ok(c, overview)
}

func selection(c echo.Context) service.Selection {
	return service.Selection{
		Preset: c.QueryParam("preset"),
		From:   c.QueryParam("from"),
		To:     c.QueryParam("to"),
	}
}
