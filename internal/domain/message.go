package domain

import "time"

type MessageStatus string

const (
	MessageStatusPending   MessageStatus = "pending"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
	MessageStatusFailed    MessageStatus = "failed"
)

type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeVideo    MessageType = "video"
	MessageTypeDocument MessageType = "document"
	MessageTypeTemplate MessageType = "template"
)

type Message struct {
	ID        string        `yaml:"id" json:"id"`
	Sender    string        `yaml:"sender" json:"sender"`
	Recipient string        `yaml:"recipient" json:"recipient"`
	Preview   string        `yaml:"preview" json:"preview"`
	Status    MessageStatus `yaml:"status" json:"status"`
	Timestamp time.Time     `yaml:"timestamp" json:"timestamp"`
	Type      MessageType   `yaml:"type" json:"type"`
}

// MessageRow is a Message decorated for the message log table.
type MessageRow struct {
	Message
	StatusBadge Badge  `json:"statusBadge"`
	TypeLabel   string `json:"typeLabel"`
}

func (s MessageStatus) Badge() Badge {
	switch s {
	case MessageStatusDelivered:
		return Badge{Label: "Delivered", Tone: ToneSuccess}
	case MessageStatusRead:
		return Badge{Label: "Read", Tone: ToneInfo}
	case MessageStatusFailed:
		return Badge{Label: "Failed", Tone: ToneDanger}
	case MessageStatusPending:
		return Badge{Label: "Pending", Tone: ToneWarning}
	default:
		return UnknownBadge
	}
}

func (t MessageType) Label() string {
	switch t {
	case MessageTypeText:
		return "Text"
	case MessageTypeImage:
		return "Image"
	case MessageTypeVideo:
		return "Video"
	case MessageTypeDocument:
		return "Doc"
	case MessageTypeTemplate:
		return "Template"
	default:
		return UnknownBadge.Label
	}
}

func NewMessageRow(m Message) MessageRow {
	return MessageRow{
		Message:     m,
		StatusBadge: m.Status.Badge(),
		TypeLabel:   m.Type.Label(),
	}
}

type Recipient struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Phone  string `yaml:"phone" json:"phone"`
	Avatar string `yaml:"avatar" json:"avatar,omitempty"`
}

type Template struct {
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Content   string   `yaml:"content" json:"content"`
	Variables []string `yaml:"variables" json:"variables"`
}

// OutgoingMessage is the normalized payload handed to the send callback.
type OutgoingMessage struct {
	Text              string            `json:"text"`
	Attachments       []string          `json:"attachments"`
	Recipients        []Recipient       `json:"recipients"`
	Template          *Template         `json:"template,omitempty"`
	TemplateVariables map[string]string `json:"templateVariables,omitempty"`
	Preview           string            `json:"preview,omitempty"`
}
