package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
)

var (
	PrimaryColor = lipgloss.Color("#7D56F4")
	SuccessColor = lipgloss.Color("#43BF6D")
	ErrorColor   = lipgloss.Color("#FF5555")
	WarningColor = lipgloss.Color("#FFA500")
	MutedColor   = lipgloss.Color("#626262")
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(MutedColor)

	successStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(WarningColor)
)

var toneColors = map[string]lipgloss.Color{
	domain.ToneSuccess: SuccessColor,
	domain.ToneInfo:    PrimaryColor,
	domain.ToneWarning: WarningColor,
	domain.ToneDanger:  ErrorColor,
	domain.ToneOutline: MutedColor,
	domain.ToneNeutral: MutedColor,
}

// badge colours a status label by its tone.
func badge(b domain.Badge) string {
	color, ok := toneColors[b.Tone]
	if !ok {
		return b.Label
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.Label)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(PrimaryColor)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
