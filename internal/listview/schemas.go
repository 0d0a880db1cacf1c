package listview

import (
	"strconv"
	"strings"
	"time"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

var Messages = Schema[domain.Message]{
	Search: []func(domain.Message) string{
		func(m domain.Message) string { return m.Sender },
		func(m domain.Message) string { return m.Recipient },
		func(m domain.Message) string { return m.Preview },
	},
	Filters: map[string]func(domain.Message) string{
		"status": func(m domain.Message) string { return string(m.Status) },
		"type":   func(m domain.Message) string { return string(m.Type) },
	},
	Sorts: map[string]SortField[domain.Message]{
		"sender":    ByString(func(m domain.Message) string { return m.Sender }),
		"recipient": ByString(func(m domain.Message) string { return m.Recipient }),
		"preview":   ByString(func(m domain.Message) string { return m.Preview }),
		"status":    ByString(func(m domain.Message) string { return string(m.Status) }),
		"type":      ByString(func(m domain.Message) string { return string(m.Type) }),
		"timestamp": ByTime(func(m domain.Message) time.Time { return m.Timestamp }),
	},
	DefaultSort:  Sort{Key: "timestamp", Direction: Desc},
	EmptyMessage: "No messages found",
}

var Devices = Schema[domain.Device]{
	Search: []func(domain.Device) string{
		func(d domain.Device) string { return d.Name },
		func(d domain.Device) string { return d.PhoneNumber },
	},
	Filters: map[string]func(domain.Device) string{
		"status": func(d domain.Device) string { return string(d.Status) },
	},
	Sorts: map[string]SortField[domain.Device]{
		"name":           ByString(func(d domain.Device) string { return d.Name }),
		"phoneNumber":    ByString(func(d domain.Device) string { return d.PhoneNumber }),
		"status":         ByString(func(d domain.Device) string { return string(d.Status) }),
		"lastConnection": ByTime(func(d domain.Device) time.Time { return d.LastConnection }),
		"messageCount":   ByNumber(func(d domain.Device) float64 { return float64(d.MessageCount) }),
	},
	EmptyMessage: "No devices found",
}

var Webhooks = Schema[domain.Webhook]{
	Search: []func(domain.Webhook) string{
		func(w domain.Webhook) string { return w.URL },
		func(w domain.Webhook) string { return w.Description },
		func(w domain.Webhook) string { return strings.Join(w.Events, " ") },
	},
	Filters: map[string]func(domain.Webhook) string{
		"status": func(w domain.Webhook) string { return string(w.Status) },
	},
	Sorts: map[string]SortField[domain.Webhook]{
		"url":           ByString(func(w domain.Webhook) string { return w.URL }),
		"status":        ByString(func(w domain.Webhook) string { return string(w.Status) }),
		"lastTriggered": ByTime(domain.Webhook.LastTriggeredAt),
	},
	EmptyMessage: "No webhooks configured",
}

var Credentials = Schema[domain.Credential]{
	Search: []func(domain.Credential) string{
		func(c domain.Credential) string { return c.Name },
		func(c domain.Credential) string { return c.Key },
	},
	Filters: map[string]func(domain.Credential) string{
		"active": func(c domain.Credential) string { return strconv.FormatBool(c.Active) },
	},
	Sorts: map[string]SortField[domain.Credential]{
		"name":     ByString(func(c domain.Credential) string { return c.Name }),
		"created":  ByTime(func(c domain.Credential) time.Time { return c.Created }),
		"lastUsed": ByTime(func(c domain.Credential) time.Time { return c.LastUsed }),
	},
	EmptyMessage: "No API credentials found",
}
