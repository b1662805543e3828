// Package ui provides the interactive bubbletea board for the play command.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for cell states.
var (
	ColorSafe    = lipgloss.Color("#8BC34A") // green: proven safe
	ColorMine    = lipgloss.Color("#e53935") // red: proven mine
	ColorUnknown = lipgloss.Color("#5c6773") // gray: undetermined
	ColorBorder  = lipgloss.Color("#2a3850")
	ColorAccent  = lipgloss.Color("#2196F3")
)

// Styles holds the lipgloss styles used by the play page.
type Styles struct {
	Header   lipgloss.Style
	Board    lipgloss.Style
	Revealed lipgloss.Style
	Safe     lipgloss.Style
	Mine     lipgloss.Style
	Unknown  lipgloss.Style
	Panel    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the play page styling.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		Revealed: lipgloss.NewStyle().Bold(true),
		Safe:     lipgloss.NewStyle().Foreground(ColorSafe),
		Mine:     lipgloss.NewStyle().Foreground(ColorMine).Bold(true),
		Unknown:  lipgloss.NewStyle().Foreground(ColorUnknown),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		Status: lipgloss.NewStyle().Bold(true),
		Help:   lipgloss.NewStyle().Foreground(ColorUnknown),
	}
}
