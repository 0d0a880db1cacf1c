package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

func TestDefaults_ContainsDashboardFixtures(t *testing.T) {
	data := Defaults()

	require.Len(t, data.Messages, 5)
	assert.Len(t, data.Devices, 3)
	assert.Len(t, data.Webhooks, 3)
	assert.Len(t, data.Credentials, 3)
	assert.Len(t, data.Templates, 3)
	assert.Len(t, data.Analytics.MessageVolume, 7)

	failed := data.Messages[3]
	assert.Equal(t, "+5555555555", failed.Recipient)
	assert.Equal(t, domain.MessageStatusFailed, failed.Status)
	assert.Equal(t, domain.MessageTypeTemplate, failed.Type)
	assert.Equal(t, time.Date(2023, 6, 15, 15, 0, 0, 0, time.UTC), failed.Timestamp.UTC())

	require.NotNil(t, data.Webhooks[0].LastTriggered)
	assert.Equal(t, 30, data.SystemParameters.MessageRetention)
	assert.Equal(t, "Hello {{name}}, welcome to our service!", data.Templates[0].Content)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	content := "messages:\n  - id: \"9\"\n    sender: a\n    recipient: b\n    preview: hi\n    status: read\n    timestamp: 2024-01-01T00:00:00Z\n    type: text\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	data, err := Load(path)
	require.NoError(t, err)
	require.Len(t, data.Messages, 1)
	assert.Equal(t, "9", data.Messages[0].ID)
	assert.Empty(t, data.Devices)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("messages: [::"))
	assert.Error(t, err)
}
