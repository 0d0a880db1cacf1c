package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/onurcolak/gateway-dashboard/environments"
	"github.com/onurcolak/gateway-dashboard/handlers"
	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/hooks"
	"github.com/onurcolak/gateway-dashboard/internal/middlewares"
	"github.com/onurcolak/gateway-dashboard/internal/pairing"
	"github.com/onurcolak/gateway-dashboard/internal/repository"
	"github.com/onurcolak/gateway-dashboard/internal/scheduler"
	"github.com/onurcolak/gateway-dashboard/internal/service"
	"github.com/onurcolak/gateway-dashboard/internal/shell"
	"github.com/onurcolak/gateway-dashboard/internal/viewstate"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
	"github.com/onurcolak/gateway-dashboard/pkg/redis"
	"github.com/onurcolak/gateway-dashboard/pkg/seed"
	"github.com/onurcolak/gateway-dashboard/pkg/validator"
	"github.com/onurcolak/gateway-dashboard/pkg/webhook"
	"github.com/onurcolak/gateway-dashboard/routes"

	_ "github.com/onurcolak/gateway-dashboard/docs" // swagger docs
)

// @title Gateway Dashboard API
// @version 1.0
// @description Admin dashboard for a WhatsApp messaging gateway
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @schemes http https
func main() {
	// Load config
	cfg := environments.Load()

	logger.Init(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	logger.Infof("Starting Gateway Dashboard...")

	// Mock state
	data, err := seed.Load(cfg.Seed.FixturesPath)
	if err != nil {
		logger.Fatalf("Failed to load fixtures: %v", err)
	}

	// Optional view-state mirror
	var redisClient *redis.Client
	var snapshotCache viewstate.SnapshotCache
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Warnf("Valkey not available, view states stay in memory: %v", err)
			redisClient = nil
		} else {
			snapshotCache = redisClient
		}
	}

	// Repositories
	messageRepo := repository.NewMessageRepository(data.Messages, data.Conversations)
	catalogRepo := repository.NewCatalogRepository(data.Recipients, data.Templates)
	deviceRepo := repository.NewDeviceRepository(data.Devices)
	webhookRepo := repository.NewWebhookRepository(data.Webhooks)
	credentialRepo := repository.NewCredentialRepository(data.Credentials)
	settingsRepo := repository.NewSettingsRepository(data.SystemParameters, data.Notifications)

	// Host callbacks
	callbacks := hooks.LogHooks{}

	// Services
	tester := webhook.New(cfg.WebhookTest, rand.Float64)
	messageService := service.NewMessageService(messageRepo, catalogRepo, callbacks)
	deviceService := service.NewDeviceService(deviceRepo, callbacks)
	webhookService := service.NewWebhookService(webhookRepo, tester, callbacks)
	credentialService := service.NewCredentialService(credentialRepo, callbacks)
	settingsService := service.NewSettingsService(settingsRepo, callbacks)
	analyticsService := service.NewAnalyticsService(data.Analytics, callbacks)
	overviewService := service.NewOverviewService(deviceRepo, webhookRepo, data.Analytics, data.Activities)

	views := viewstate.NewController(snapshotCache)

	// Pairing widget
	pairingManager := pairing.NewManager(pairing.Config{
		Countdown:          cfg.Pairing.Countdown,
		TickInterval:       cfg.Pairing.TickInterval,
		SuccessProbability: cfg.Pairing.SuccessProbability,
	}, pairing.RealClock(), pairing.DefaultRandom())

	pairingManager.SkipTakenIDs(func(deviceID string) bool {
		return deviceService.Exists(context.Background(), deviceID)
	})
	pairingManager.OnPaired(func(viewID, deviceID string) {
		ctx := context.Background()
		if _, err := deviceService.AddPaired(ctx, deviceID); err != nil {
			logger.Errorf("Failed to add paired device %s: %v", deviceID, err)
			return
		}
		if viewID == "" {
			return
		}
		_, err := views.Apply(ctx, viewID, viewstate.ScreenDevices, viewstate.Action{Type: viewstate.ActionComplete})
		if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
			logger.Warnf("Failed to return view %s to the device list: %v", viewID, err)
		}
	})

	sweeper := scheduler.NewScheduler(cfg.Pairing.SweepInterval,
		scheduler.Target{Name: "pairing sessions", Sweeper: pairingManager, Idle: cfg.Pairing.IdleTimeout},
		scheduler.Target{Name: "view states", Sweeper: views, Idle: cfg.ViewState.IdleTimeout},
	)
	if err := sweeper.Start(context.Background()); err != nil {
		logger.Fatalf("Failed to start sweeper: %v", err)
	}

	renderer, err := shell.NewRenderer()
	if err != nil {
		logger.Fatalf("Failed to load layout: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Renderer = renderer

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.L().Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
			)
			return nil
		},
	}))
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			middlewares.ViewIDHeader,
		},
		ExposeHeaders: []string{middlewares.ViewIDHeader},
	}))

	// Setup routes
	routes.RegisterRoutes(e, routes.Handlers{
		Health:      handlers.NewHealthHandler(redisClient, pairingManager, sweeper),
		Pages:       handlers.NewPageHandler(),
		Messages:    handlers.NewMessageHandler(messageService, views),
		Devices:     handlers.NewDeviceHandler(deviceService, views),
		Pairing:     handlers.NewPairingHandler(pairingManager, views),
		Webhooks:    handlers.NewWebhookHandler(webhookService, views),
		Credentials: handlers.NewCredentialHandler(credentialService, views),
		Settings:    handlers.NewSettingsHandler(settingsService),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService, overviewService),
		Views:       handlers.NewViewHandler(views),
	})

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Infof("Server starting on http://localhost%s", addr)
		logger.Infof("Swagger docs available at http://localhost%s/swagger/index.html", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down gracefully...")

	// Stop pairing countdowns first so no callback runs mid-shutdown.
	logger.Infof("Closing pairing sessions...")
	if err := sweeper.Stop(); err != nil {
		logger.Errorf("Failed to stop sweeper: %v", err)
	}
	pairingManager.CloseAll()

	// Shutdown HTTP server (with timeout)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	logger.Infof("Shutting down HTTP server...")
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	} else {
		logger.Infof("HTTP server stopped successfully")
	}

	// Close Valkey connection
	if redisClient != nil {
		logger.Infof("Closing Valkey connection...")
		if err := redisClient.Close(); err != nil {
			logger.Errorf("Error closing Valkey: %v", err)
		}
	}

	logger.Infof("Graceful shutdown completed")
}
