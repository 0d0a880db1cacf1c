package service

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/onurcolak/gateway-dashboard/internal/analytics"
	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

type Overview struct {
	Stats          []StatCard        `json:"stats"`
	ActiveDevices  int               `json:"activeDevices"`
	ActiveWebhooks int               `json:"activeWebhooks"`
	MessagesToday  int               `json:"messagesToday"`
	DeliveryRate   int               `json:"deliveryRate"`
	RecentActivity []domain.Activity `json:"recentActivity"`
}

// OverviewService builds the landing page summary from the other stores.
type OverviewService struct {
	devices    deviceRepository
	webhooks   webhookRepository
	analytics  domain.AnalyticsData
	activities []domain.Activity
}

func NewOverviewService(devices deviceRepository, webhooks webhookRepository, data domain.AnalyticsData, activities []domain.Activity) *OverviewService {
	return &OverviewService{
		devices:    devices,
		webhooks:   webhooks,
		analytics:  data,
		activities: slices.Clone(activities),
	}
}

func (s *OverviewService) Overview(ctx context.Context) (*Overview, error) {
	devices, err := s.devices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	webhooks, err := s.webhooks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}

	out := &Overview{RecentActivity: slices.Clone(s.activities)}
	for _, d := range devices {
		if d.Status == domain.DeviceStatusOnline {
			out.ActiveDevices++
		}
	}
	for _, w := range webhooks {
		if w.Status == domain.WebhookStatusActive {
			out.ActiveWebhooks++
		}
	}
	if n := len(s.analytics.MessageVolume); n > 0 {
		last := s.analytics.MessageVolume[n-1]
		out.MessagesToday = last.Sent + last.Received
	}
	out.DeliveryRate = analytics.Delivery(s.analytics.DeliveryRate).SuccessRate

	p := message.NewPrinter(language.English)
	out.Stats = []StatCard{
		{Title: "Active Devices", Value: p.Sprintf("%d", out.ActiveDevices), Icon: "smartphone"},
		{Title: "Active Webhooks", Value: p.Sprintf("%d", out.ActiveWebhooks), Icon: "webhook"},
		{Title: "Messages Today", Value: p.Sprintf("%d", out.MessagesToday), Icon: "message-square"},
		{Title: "Delivery Rate", Value: fmt.Sprintf("%d%%", out.DeliveryRate), Icon: "bar-chart-3"},
	}

	return out, nil
}
