package domain

const (
	ToneSuccess = "success"
	ToneInfo    = "info"
	ToneWarning = "warning"
	ToneDanger  = "danger"
	ToneOutline = "outline"
	ToneNeutral = "neutral"
)

// Badge is the visual label attached to an enum value.
type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

var UnknownBadge = Badge{Label: "Unknown", Tone: ToneNeutral}
