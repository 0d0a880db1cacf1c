package domain

import "time"

type DeviceStatus string

const (
	DeviceStatusOnline  DeviceStatus = "online"
	DeviceStatusOffline DeviceStatus = "offline"
	DeviceStatusPairing DeviceStatus = "pairing"
	DeviceStatusError   DeviceStatus = "error"
)

type Device struct {
	ID             string       `yaml:"id" json:"id"`
	Name           string       `yaml:"name" json:"name"`
	PhoneNumber    string       `yaml:"phoneNumber" json:"phoneNumber"`
	Status         DeviceStatus `yaml:"status" json:"status"`
	LastConnection time.Time    `yaml:"lastConnection" json:"lastConnection"`
	MessageCount   int          `yaml:"messageCount" json:"messageCount"`

	BatteryLevel   int            `yaml:"batteryLevel" json:"batteryLevel"`
	SignalStrength int            `yaml:"signalStrength" json:"signalStrength"`
	ErrorMessage   string         `yaml:"errorMessage" json:"errorMessage,omitempty"`
	Metrics        []DeviceMetric `yaml:"metrics" json:"metrics,omitempty"`
	MessageStats   []MessageStat  `yaml:"messageStats" json:"messageStats,omitempty"`
}

type DeviceMetric struct {
	Label  string `yaml:"label" json:"label"`
	Value  string `yaml:"value" json:"value"`
	Change string `yaml:"change" json:"change,omitempty"`
	Trend  string `yaml:"trend" json:"trend,omitempty"`
}

type MessageStat struct {
	Type       string `yaml:"type" json:"type"`
	Count      int    `yaml:"count" json:"count"`
	Percentage int    `yaml:"percentage" json:"percentage"`
}

type DeviceRow struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	PhoneNumber    string       `json:"phoneNumber"`
	Status         DeviceStatus `json:"status"`
	StatusBadge    Badge        `json:"statusBadge"`
	LastConnection time.Time    `json:"lastConnection"`
	MessageCount   int          `json:"messageCount"`
}

func (s DeviceStatus) Badge() Badge {
	switch s {
	case DeviceStatusOnline:
		return Badge{Label: "Online", Tone: ToneSuccess}
	case DeviceStatusOffline:
		return Badge{Label: "Offline", Tone: ToneDanger}
	case DeviceStatusPairing:
		return Badge{Label: "Pairing", Tone: ToneWarning}
	case DeviceStatusError:
		return Badge{Label: "Error", Tone: ToneDanger}
	default:
		return UnknownBadge
	}
}

func NewDeviceRow(d Device) DeviceRow {
	return DeviceRow{
		ID:             d.ID,
		Name:           d.Name,
		PhoneNumber:    d.PhoneNumber,
		Status:         d.Status,
		StatusBadge:    d.Status.Badge(),
		LastConnection: d.LastConnection,
		MessageCount:   d.MessageCount,
	}
}
