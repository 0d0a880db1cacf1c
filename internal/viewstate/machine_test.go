package viewstate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

func TestInitial(t *testing.T) {
	assert.Equal(t, ViewList, Initial(ScreenMessages).View)
	assert.Equal(t, "timestamp", Initial(ScreenMessages).Query.Sort.Key)
	assert.Equal(t, View("notifications"), Initial(ScreenSettings).View)
	assert.Equal(t, View("overview"), Initial(ScreenAnalytics).View)
}

func TestTransition_WebhookEditAndCancel(t *testing.T) {
	s := Initial(ScreenWebhooks)

	s, err := Transition(s, Action{Type: ActionEdit, ID: "w2"})
	require.NoError(t, err)
	assert.Equal(t, ViewForm, s.View)
	assert.Equal(t, "w2", s.SelectedID)

	s, err = Transition(s, Action{Type: ActionCancel})
	require.NoError(t, err)
	assert.Equal(t, ViewList, s.View)
	assert.Empty(t, s.SelectedID)
}

func TestTransition_AddStartsWithoutSelection(t *testing.T) {
	s := Initial(ScreenWebhooks)
	s.SelectedID = "stale"

	s, err := Transition(s, Action{Type: ActionAdd})
	require.NoError(t, err)
	assert.Equal(t, ViewForm, s.View)
	assert.Empty(t, s.SelectedID)
}

func TestTransition_MessageFlows(t *testing.T) {
	s := Initial(ScreenMessages)

	conv, err := Transition(s, Action{Type: ActionView, ID: "4"})
	require.NoError(t, err)
	assert.Equal(t, ViewConversation, conv.View)

	back, err := Transition(conv, Action{Type: ActionBack})
	require.NoError(t, err)
	assert.Equal(t, ViewList, back.View)
	assert.Empty(t, back.SelectedID)

	compose, err := Transition(s, Action{Type: ActionCompose})
	require.NoError(t, err)
	done, err := Transition(compose, Action{Type: ActionComplete})
	require.NoError(t, err)
	assert.Equal(t, ViewList, done.View)
}

func TestTransition_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		state  State
		action Action
	}{
		{"view without id", Initial(ScreenDevices), Action{Type: ActionView}},
		{"back from list", Initial(ScreenDevices), Action{Type: ActionBack}},
		{"compose on devices", Initial(ScreenDevices), Action{Type: ActionCompose}},
		{"unknown action", Initial(ScreenMessages), Action{Type: "explode"}},
		{"unknown tab", Initial(ScreenSettings), Action{Type: ActionTab, Tab: "billing"}},
		{"non-tab on tabbed screen", Initial(ScreenAnalytics), Action{Type: ActionAdd}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Transition(tt.state, tt.action)
			assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
			assert.Equal(t, tt.state, next)
		})
	}
}

func TestTransition_Tabs(t *testing.T) {
	s, err := Transition(Initial(ScreenAnalytics), Action{Type: ActionTab, Tab: "delivery"})
	require.NoError(t, err)
	assert.Equal(t, View("delivery"), s.View)
}

func TestParseScreen(t *testing.T) {
	s, err := ParseScreen("devices")
	require.NoError(t, err)
	assert.Equal(t, ScreenDevices, s)

	_, err = ParseScreen("billing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
