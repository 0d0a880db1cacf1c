package domain

import "time"

type WebhookStatus string

const (
	WebhookStatusActive   WebhookStatus = "active"
	WebhookStatusInactive WebhookStatus = "inactive"
	WebhookStatusError    WebhookStatus = "error"
)

type Webhook struct {
	ID            string        `yaml:"id" json:"id"`
	URL           string        `yaml:"url" json:"url"`
	Description   string        `yaml:"description" json:"description"`
	Events        []string      `yaml:"events" json:"events"`
	Status        WebhookStatus `yaml:"status" json:"status"`
	LastTriggered *time.Time    `yaml:"lastTriggered" json:"lastTriggered"`
}

type WebhookRow struct {
	Webhook
	StatusBadge        Badge  `json:"statusBadge"`
	LastTriggeredLabel string `json:"lastTriggeredLabel"`
}

// EventType is one of the event kinds a webhook can subscribe to.
type EventType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var EventTypes = []EventType{
	{ID: "message.received", Label: "Message Received"},
	{ID: "message.sent", Label: "Message Sent"},
	{ID: "message.delivered", Label: "Message Delivered"},
	{ID: "message.read", Label: "Message Read"},
	{ID: "message.failed", Label: "Message Failed"},
	{ID: "status.change", Label: "Status Change"},
	{ID: "device.connected", Label: "Device Connected"},
	{ID: "device.disconnected", Label: "Device Disconnected"},
}

type WebhookTestResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
}

func (s WebhookStatus) Badge() Badge {
	switch s {
	case WebhookStatusActive:
		return Badge{Label: "Active", Tone: ToneSuccess}
	case WebhookStatusInactive:
		return Badge{Label: "Inactive", Tone: ToneOutline}
	case WebhookStatusError:
		return Badge{Label: "Error", Tone: ToneDanger}
	default:
		return UnknownBadge
	}
}

func NewWebhookRow(w Webhook) WebhookRow {
	label := "Never"
	if w.LastTriggered != nil {
		label = w.LastTriggered.UTC().Format(time.RFC1123)
	}

	return WebhookRow{
		Webhook:            w,
		StatusBadge:        w.Status.Badge(),
		LastTriggeredLabel: label,
	}
}

// LastTriggeredAt returns the zero time for webhooks that never fired.
func (w Webhook) LastTriggeredAt() time.Time {
	if w.LastTriggered == nil {
		return time.Time{}
	}
	return *w.LastTriggered
}

func IsKnownEventType(id string) bool {
	for _, e := range EventTypes {
		if e.ID == id {
			return true
		}
	}
	return false
}
