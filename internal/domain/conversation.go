package domain

import "time"

type ConversationStatus string

const (
	ConversationStatusSent      ConversationStatus = "sent"
	ConversationStatusDelivered ConversationStatus = "delivered"
	ConversationStatusRead      ConversationStatus = "read"
	ConversationStatusFailed    ConversationStatus = "failed"
)

type ConversationSender struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Avatar   string `yaml:"avatar" json:"avatar,omitempty"`
	IsSystem bool   `yaml:"isSystem" json:"isSystem"`
}

type ConversationMessage struct {
	ID        string             `yaml:"id" json:"id"`
	Content   string             `yaml:"content" json:"content"`
	Sender    ConversationSender `yaml:"sender" json:"sender"`
	Timestamp time.Time          `yaml:"timestamp" json:"timestamp"`
	Status    ConversationStatus `yaml:"status" json:"status"`
}

type Conversation struct {
	ContactName  string                `yaml:"contactName" json:"contactName"`
	ContactPhone string                `yaml:"contactPhone" json:"contactPhone"`
	Messages     []ConversationMessage `yaml:"messages" json:"messages"`
}

func (s ConversationStatus) Badge() Badge {
	switch s {
	case ConversationStatusSent:
		return Badge{Label: "Sent", Tone: ToneNeutral}
	case ConversationStatusDelivered:
		return Badge{Label: "Delivered", Tone: ToneSuccess}
	case ConversationStatusRead:
		return Badge{Label: "Read", Tone: ToneInfo}
	case ConversationStatusFailed:
		return Badge{Label: "Failed", Tone: ToneDanger}
	default:
		return UnknownBadge
	}
}
