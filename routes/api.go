package routes

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/onurcolak/gateway-dashboard/handlers"
	"github.com/onurcolak/gateway-dashboard/internal/middlewares"
	"github.com/onurcolak/gateway-dashboard/internal/shell"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Health      *handlers.HealthHandler
	Pages       *handlers.PageHandler
	Messages    *handlers.MessageHandler
	Devices     *handlers.DeviceHandler
	Pairing     *handlers.PairingHandler
	Webhooks    *handlers.WebhookHandler
	Credentials *handlers.CredentialHandler
	Settings    *handlers.SettingsHandler
	Analytics   *handlers.AnalyticsHandler
	Views       *handlers.ViewHandler
}

// RegisterRoutes registers the layout pages and all API routes.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Layout shell
	for _, section := range shell.Sections() {
		e.GET(section.Path, h.Pages.RenderPage)
	}
	e.GET("/*", h.Pages.Fallback)

	// API v1 base group, scoped to a dashboard view
	v1 := e.Group("/api/v1", middlewares.ViewID())

	v1.GET("/navigation", h.Pages.GetNavigation)
	v1.GET("/overview", h.Analytics.GetOverview)

	messages := v1.Group("/messages")
	messages.GET("", h.Messages.ListMessages)
	messages.POST("", h.Messages.ComposeMessage)
	messages.GET("/:id", h.Messages.GetMessage)
	messages.DELETE("/:id", h.Messages.DeleteMessage)
	messages.GET("/:id/conversation", h.Messages.GetConversation)
	messages.POST("/:id/reply", h.Messages.Reply)
	messages.POST("/:id/resend", h.Messages.ResendMessage)

	v1.GET("/templates", h.Messages.ListTemplates)
	v1.POST("/templates/preview", h.Messages.PreviewTemplate)
	v1.GET("/recipients", h.Messages.ListRecipients)

	devices := v1.Group("/devices")
	devices.GET("", h.Devices.ListDevices)
	devices.POST("/refresh", h.Devices.RefreshDevices)
	devices.GET("/:id", h.Devices.GetDevice)
	devices.POST("/:id/disconnect", h.Devices.DisconnectDevice)

	pairing := v1.Group("/pairing")
	pairing.POST("", h.Pairing.OpenSession)
	pairing.GET("/:id", h.Pairing.GetSession)
	pairing.DELETE("/:id", h.Pairing.CloseSession)
	pairing.POST("/:id/start", h.Pairing.StartPairing)
	pairing.POST("/:id/cancel", h.Pairing.CancelPairing)
	pairing.POST("/:id/reset", h.Pairing.ResetPairing)
	pairing.GET("/:id/ws", h.Pairing.StreamSession)

	webhooks := v1.Group("/webhooks")
	webhooks.GET("", h.Webhooks.ListWebhooks)
	webhooks.POST("", h.Webhooks.CreateWebhook)
	webhooks.GET("/event-types", h.Webhooks.ListEventTypes)
	webhooks.POST("/test", h.Webhooks.TestWebhook)
	webhooks.GET("/:id", h.Webhooks.GetWebhook)
	webhooks.PUT("/:id", h.Webhooks.UpdateWebhook)
	webhooks.DELETE("/:id", h.Webhooks.DeleteWebhook)

	credentials := v1.Group("/credentials")
	credentials.GET("", h.Credentials.ListCredentials)
	credentials.POST("", h.Credentials.CreateCredential)
	credentials.GET("/permissions", h.Credentials.ListPermissions)
	credentials.DELETE("/:id", h.Credentials.RevokeCredential)
	credentials.POST("/:id/regenerate", h.Credentials.RegenerateCredential)
	credentials.PUT("/:id/active", h.Credentials.SetCredentialActive)
	credentials.POST("/:id/secret", h.Credentials.ToggleSecret)

	settings := v1.Group("/settings")
	settings.GET("/system", h.Settings.GetSystemSettings)
	settings.PUT("/system", h.Settings.SaveSystemSettings)
	settings.GET("/system/fields", h.Settings.ListSystemFields)
	settings.PATCH("/system/fields/:field", h.Settings.UpdateSystemField)
	settings.GET("/notifications", h.Settings.GetNotificationSettings)
	settings.PUT("/notifications", h.Settings.SaveNotificationSettings)
	settings.POST("/reset", h.Settings.ResetSettings)

	analytics := v1.Group("/analytics")
	analytics.GET("", h.Analytics.GetReport)
	analytics.PUT("/range", h.Analytics.ChangeRange)
	analytics.DELETE("/range", h.Analytics.ResetRange)
	analytics.GET("/export", h.Analytics.ExportReport)

	views := v1.Group("/views")
	views.DELETE("", h.Views.ForgetView)
	views.GET("/:screen", h.Views.GetViewState)
	views.POST("/:screen/actions", h.Views.ApplyAction)
	views.POST("/:screen/sort/:field", h.Views.ToggleSort)
}
