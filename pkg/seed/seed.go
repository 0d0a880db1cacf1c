package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Data is the mock state the dashboard starts with.
type Data struct {
	Messages         []domain.Message            `yaml:"messages"`
	Devices          []domain.Device             `yaml:"devices"`
	Webhooks         []domain.Webhook            `yaml:"webhooks"`
	Credentials      []domain.Credential         `yaml:"credentials"`
	Recipients       []domain.Recipient          `yaml:"recipients"`
	Templates        []domain.Template           `yaml:"templates"`
	Conversations    []domain.Conversation       `yaml:"conversations"`
	Analytics        domain.AnalyticsData        `yaml:"analytics"`
	SystemParameters domain.SystemParameters     `yaml:"systemParameters"`
	Notifications    domain.NotificationSettings `yaml:"notifications"`
	Activities       []domain.Activity           `yaml:"activities"`
}

// Load reads fixtures from path, or the embedded defaults when path is empty.
func Load(path string) (*Data, error) {
	raw := defaultFixtures

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixtures %q: %w", path, err)
		}
		raw = b
	}

	data, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	logger.Infof("Seeded %d messages, %d devices, %d webhooks, %d credentials",
		len(data.Messages), len(data.Devices), len(data.Webhooks), len(data.Credentials))

	return data, nil
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &data, nil
}

// Defaults returns a fresh copy of the embedded fixtures.
func Defaults() *Data {
	data, err := Parse(defaultFixtures)
	if err != nil {
		panic("embedded fixtures are invalid: " + err.Error())
	}
	return data
}
