package domain

import "time"

const maskedSecret = "••••••••••••••••"

type Credential struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	Key         string    `yaml:"key" json:"key"`
	Secret      string    `yaml:"secret" json:"secret,omitempty"`
	Created     time.Time `yaml:"created" json:"created"`
	LastUsed    time.Time `yaml:"lastUsed" json:"lastUsed"`
	Permissions []string  `yaml:"permissions" json:"permissions"`
	Active      bool      `yaml:"active" json:"active"`
}

// CredentialRow is a credential as shown to one view: the secret is masked
// unless that view toggled it visible.
type CredentialRow struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Key           string    `json:"key"`
	Secret        string    `json:"secret,omitempty"`
	SecretVisible bool      `json:"secretVisible"`
	Created       time.Time `json:"created"`
	LastUsed      time.Time `json:"lastUsed"`
	Permissions   []string  `json:"permissions"`
	Active        bool      `json:"active"`
	StatusBadge   Badge     `json:"statusBadge"`
}

type Permission struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var Permissions = []Permission{
	{ID: "read:messages", Label: "Read Messages"},
	{ID: "write:messages", Label: "Send Messages"},
	{ID: "read:devices", Label: "View Devices"},
	{ID: "write:devices", Label: "Manage Devices"},
	{ID: "read:webhooks", Label: "View Webhooks"},
	{ID: "write:webhooks", Label: "Manage Webhooks"},
	{ID: "read:analytics", Label: "View Analytics"},
	{ID: "admin", Label: "Admin Access"},
}

func IsKnownPermission(id string) bool {
	for _, p := range Permissions {
		if p.ID == id {
			return true
		}
	}
	return false
}

func NewCredentialRow(c Credential, reveal bool) CredentialRow {
	row := CredentialRow{
		ID:            c.ID,
		Name:          c.Name,
		Key:           c.Key,
		SecretVisible: reveal && c.Secret != "",
		Created:       c.Created,
		LastUsed:      c.LastUsed,
		Permissions:   c.Permissions,
		Active:        c.Active,
		StatusBadge:   Badge{Label: "Inactive", Tone: ToneOutline},
	}
	if c.Active {
		row.StatusBadge = Badge{Label: "Active", Tone: ToneSuccess}
	}

	if c.Secret != "" {
		row.Secret = maskedSecret
		if reveal {
			row.Secret = c.Secret
		}
	}

	return row
}
