// Package viewstate tracks which sub-view each dashboard screen shows for a
// given browser view, along with its list query and toggles.
package viewstate

import (
	"fmt"
	"slices"
	"time"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/listview"
)

type Screen string

const (
	ScreenMessages    Screen = "messages"
	ScreenDevices     Screen = "devices"
	ScreenWebhooks    Screen = "webhooks"
	ScreenCredentials Screen = "credentials"
	ScreenSettings    Screen = "settings"
	ScreenAnalytics   Screen = "analytics"
)

type View string

const (
	ViewList         View = "list"
	ViewConversation View = "conversation"
	ViewCompose      View = "compose"
	ViewDetail       View = "detail"
	ViewCreate       View = "create"
	ViewForm         View = "form"
)

type ActionType string

const (
	ActionView     ActionType = "view"
	ActionAdd      ActionType = "add"
	ActionEdit     ActionType = "edit"
	ActionCompose  ActionType = "compose"
	ActionCancel   ActionType = "cancel"
	ActionBack     ActionType = "back"
	ActionComplete ActionType = "complete"
	ActionTab      ActionType = "tab"
)

type Action struct {
	Type ActionType `json:"type" validate:"required,oneof=view add edit compose cancel back complete tab"`
	ID   string     `json:"id,omitempty"`
	Tab  string     `json:"tab,omitempty"`
}

type State struct {
	Screen          Screen          `json:"screen"`
	View            View            `json:"view"`
	SelectedID      string          `json:"selectedId,omitempty"`
	Query           listview.Query  `json:"query"`
	RevealedSecrets map[string]bool `json:"revealedSecrets,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type edge struct {
	to       View
	needsID  bool
	clearsID bool
}

var transitions = map[Screen]map[View]map[ActionType]edge{
	ScreenMessages: {
		ViewList: {
			ActionView:    {to: ViewConversation, needsID: true},
			ActionCompose: {to: ViewCompose, clearsID: true},
		},
		ViewConversation: {
			ActionBack: {to: ViewList, clearsID: true},
		},
		ViewCompose: {
			ActionCancel:   {to: ViewList, clearsID: true},
			ActionComplete: {to: ViewList, clearsID: true},
		},
	},
	ScreenDevices: {
		ViewList: {
			ActionView: {to: ViewDetail, needsID: true},
			ActionAdd:  {to: ViewCreate, clearsID: true},
		},
		ViewDetail: {
			ActionBack: {to: ViewList, clearsID: true},
		},
		ViewCreate: {
			ActionCancel:   {to: ViewList, clearsID: true},
			ActionComplete: {to: ViewList, clearsID: true},
		},
	},
	ScreenWebhooks: {
		ViewList: {
			ActionAdd:  {to: ViewForm, clearsID: true},
			ActionEdit: {to: ViewForm, needsID: true},
		},
		ViewForm: {
			ActionCancel:   {to: ViewList, clearsID: true},
			ActionComplete: {to: ViewList, clearsID: true},
		},
	},
	ScreenCredentials: {
		ViewList: {
			ActionAdd: {to: ViewCreate, clearsID: true},
		},
		ViewCreate: {
			ActionCancel:   {to: ViewList, clearsID: true},
			ActionComplete: {to: ViewList, clearsID: true},
		},
	},
}

// Tabbed screens have no list view; their state is the selected tab.
var tabs = map[Screen][]View{
	ScreenSettings:  {"notifications", "api", "system"},
	ScreenAnalytics: {"overview", "messages", "delivery", "engagement"},
}

var listSorts = map[Screen]listview.Sort{
	ScreenMessages: listview.Messages.DefaultSort,
}

// Screens lists every screen in navigation order.
func Screens() []Screen {
	return []Screen{ScreenMessages, ScreenDevices, ScreenWebhooks, ScreenCredentials, ScreenSettings, ScreenAnalytics}
}

// Tabs returns the tab names of a tabbed screen.
func Tabs(screen Screen) []View {
	return slices.Clone(tabs[screen])
}

func ParseScreen(raw string) (Screen, error) {
	screen := Screen(raw)
	if !slices.Contains(Screens(), screen) {
		return "", fmt.Errorf("screen %q: %w", raw, domain.ErrNotFound)
	}
	return screen, nil
}

// Initial is the state a screen starts in: the list, or the first tab.
func Initial(screen Screen) State {
	view := ViewList
	if t, ok := tabs[screen]; ok {
		view = t[0]
	}

	return State{
		Screen: screen,
		View:   view,
		Query:  listview.Query{Sort: listSorts[screen]},
	}
}

// Transition returns the state reached by applying a to s. The input is never
// modified; a rejected action returns s unchanged with ErrInvalidTransition.
func Transition(s State, a Action) (State, error) {
	if t, ok := tabs[s.Screen]; ok {
		if a.Type != ActionTab || !slices.Contains(t, View(a.Tab)) {
			return s, invalid(s, a)
		}
		s.View = View(a.Tab)
		return s, nil
	}

	e, ok := transitions[s.Screen][s.View][a.Type]
	if !ok {
		return s, invalid(s, a)
	}
	if e.needsID && a.ID == "" {
		return s, fmt.Errorf("%s on %s/%s needs an id: %w", a.Type, s.Screen, s.View, domain.ErrInvalidTransition)
	}

	next := s
	next.View = e.to
	switch {
	case e.needsID:
		next.SelectedID = a.ID
	case e.clearsID:
		next.SelectedID = ""
	}

	return next, nil
}

func invalid(s State, a Action) error {
	return fmt.Errorf("%s from %s/%s: %w", a.Type, s.Screen, s.View, domain.ErrInvalidTransition)
}
