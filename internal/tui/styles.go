// Package tui provides the interactive candidate picker for search mode.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - matches the CLI colors
var (
	ColorPrimary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles contains the lipgloss styles used by the picker
type Styles struct {
	Title       lipgloss.Style
	Cursor      lipgloss.Style
	Item        lipgloss.Style
	ItemPicked  lipgloss.Style
	Version     lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the default picker styles
func DefaultStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).MarginBottom(1),
		Cursor:      lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Item:        lipgloss.NewStyle(),
		ItemPicked:  lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Version:     lipgloss.NewStyle().Foreground(ColorSuccess),
		Description: lipgloss.NewStyle().Foreground(ColorMuted),
		Help:        lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1),
	}
}
