package domain

type SystemParameters struct {
	MessageRetention int    `yaml:"messageRetention" json:"messageRetention" validate:"min=1,max=365"`
	RateLimit        int    `yaml:"rateLimit" json:"rateLimit" validate:"min=1,max=1000"`
	DefaultTemplate  string `yaml:"defaultTemplate" json:"defaultTemplate" validate:"required,oneof=welcome support notification confirmation reminder"`
	AutoReplyEnabled bool   `yaml:"autoReplyEnabled" json:"autoReplyEnabled"`
	MediaStoragePath string `yaml:"mediaStoragePath" json:"mediaStoragePath" validate:"required"`
	LogLevel         string `yaml:"logLevel" json:"logLevel" validate:"required,oneof=error warn info debug trace"`
	BackupFrequency  string `yaml:"backupFrequency" json:"backupFrequency" validate:"required,oneof=hourly daily weekly monthly manual"`
	MaxFileSize      int    `yaml:"maxFileSize" json:"maxFileSize" validate:"min=1,max=100"`
}

type NotificationSettings struct {
	EmailNotifications bool `yaml:"emailNotifications" json:"emailNotifications"`
	InAppNotifications bool `yaml:"inAppNotifications" json:"inAppNotifications"`
	MessageAlerts      bool `yaml:"messageAlerts" json:"messageAlerts"`
	ErrorAlerts        bool `yaml:"errorAlerts" json:"errorAlerts"`
	MessageThreshold   int  `yaml:"messageThreshold" json:"messageThreshold" validate:"min=0,max=100"`
	ErrorThreshold     int  `yaml:"errorThreshold" json:"errorThreshold" validate:"min=0,max=100"`
}

// NumericField is the synchronized slider/text pair of one numeric setting.
type NumericField struct {
	Field  string  `json:"field"`
	Value  float64 `json:"value"`
	Slider float64 `json:"slider"`
	Text   string  `json:"text"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Step   float64 `json:"step"`
}
