// ABOUTME: Color theme for the player TUI
// ABOUTME: Groups the lipgloss styles every widget renders with
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by the widgets
type Theme struct {
	Title     lipgloss.Style
	Border    lipgloss.Style
	Text      lipgloss.Style
	Dim       lipgloss.Style
	Selected  lipgloss.Style
	Playing   lipgloss.Style
	Paused    lipgloss.Style
	Error     lipgloss.Style
	Wave      lipgloss.Style
	WaveIdle  lipgloss.Style
	Progress  lipgloss.Color
	Separator string
}

// DefaultTheme is cyan on dark gray borders
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")),
		Playing: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Paused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Wave: lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")),
		WaveIdle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")),
		Progress:  lipgloss.Color("10"),
		Separator: "  |  ",
	}
}
