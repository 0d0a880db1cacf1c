package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/pairing"
	"github.com/onurcolak/gateway-dashboard/internal/scheduler"
	"github.com/onurcolak/gateway-dashboard/pkg/redis"
)

// HealthHandler handles health checks.
type HealthHandler struct {
	redis        *redis.Client
	pairing      *pairing.Manager
	sweeper      *scheduler.Scheduler
	checkTimeout time.Duration
}

func NewHealthHandler(redisClient *redis.Client, manager *pairing.Manager, sweeper *scheduler.Scheduler) *HealthHandler {
	return &HealthHandler{
		redis:        redisClient,
		pairing:      manager,
		sweeper:      sweeper,
		checkTimeout: 2 * time.Second,
	}
}

// Health returns overall status and component statuses (view-state cache and pairing).
// @Summary Health check
// @Description Returns overall status with cache connectivity and pairing session counts
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.checkTimeout)
	defer cancel()

	overallStatus := "ok"

	cacheStatus := "disabled"
	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			cacheStatus = "down"
			overallStatus = "degraded"
		} else {
			cacheStatus = "up"
		}
	}

	components := map[string]any{
		"store": map[string]any{
			"status": "up",
		},
		"viewStateCache": map[string]any{
			"status": cacheStatus,
		},
	}
	if h.pairing != nil {
		status := h.pairing.Status()
		components["pairing"] = map[string]any{
			"status":   "up",
			"sessions": status.Sessions,
			"scanning": status.Scanning,
		}
	}
	if h.sweeper != nil {
		components["sweeper"] = h.sweeper.GetStatus()
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":     overallStatus,
		"timestamp":  time.Now().Format(time.RFC3339),
		"components": components,
	})
}
