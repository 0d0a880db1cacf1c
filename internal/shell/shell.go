// Package shell describes the dashboard layout: its sections, the sidebar
// navigation and the page rendered for each section.
package shell

import (
	"strings"
)

type Section struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Screen string `json:"screen,omitempty"`
	API    string `json:"api"`
}

var sections = []Section{
	{Path: "/", Label: "Dashboard", API: "/api/v1/overview"},
	{Path: "/devices", Label: "Device Management", Screen: "devices", API: "/api/v1/devices"},
	{Path: "/webhooks", Label: "Webhook Configuration", Screen: "webhooks", API: "/api/v1/webhooks"},
	{Path: "/messages", Label: "Message Center", Screen: "messages", API: "/api/v1/messages"},
	{Path: "/analytics", Label: "Analytics Dashboard", Screen: "analytics", API: "/api/v1/analytics"},
	{Path: "/settings", Label: "Settings Panel", Screen: "settings", API: "/api/v1/settings/system"},
}

const HomePath = "/"

func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Lookup finds the section served at path. A trailing slash is ignored.
func Lookup(path string) (Section, bool) {
	if path != HomePath {
		path = strings.TrimSuffix(path, "/")
	}
	for _, s := range sections {
		if s.Path == path {
			return s, true
		}
	}
	return Section{}, false
}

type NavItem struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Navigation builds the sidebar for the page at current. Exactly one item is
// active when current is a known section path.
func Navigation(current string) []NavItem {
	active, _ := Lookup(current)

	items := make([]NavItem, len(sections))
	for i, s := range sections {
		items[i] = NavItem{Path: s.Path, Label: s.Label, Active: s.Path == active.Path}
	}
	return items
}

type Header struct {
	Title             string `json:"title"`
	NotificationCount int    `json:"notificationCount"`
	UserName          string `json:"userName"`
	UserAvatar        string `json:"userAvatar"`
}

type Page struct {
	Section          Section   `json:"section"`
	Header           Header    `json:"header"`
	Nav              []NavItem `json:"nav"`
	SidebarCollapsed bool      `json:"sidebarCollapsed"`
}

// NewPage assembles the layout for a known section.
func NewPage(s Section, collapsed bool) Page {
	return Page{
		Section: s,
		Header: Header{
			Title:             s.Label,
			NotificationCount: 3,
			UserName:          "John Doe",
			UserAvatar:        "https://api.dicebear.com/7.x/avataaars/svg?seed=john",
		},
		Nav:              Navigation(s.Path),
		SidebarCollapsed: collapsed,
	}
}
