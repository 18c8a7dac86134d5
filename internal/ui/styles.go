package ui

import (
	"github.com/charmbracelet/lipgloss"

	"taskmaster/models"
)

var (
	// Colors
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorCyan      = lipgloss.Color("87")  // Cyan
	ColorMagenta   = lipgloss.Color("170") // Magenta for pending status

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Bold(true).Underline(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	// List components
	StyleIndex   = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	StyleDone    = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StylePending = lipgloss.NewStyle().Foreground(ColorMagenta)

	// REPL
	StylePrompt  = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleCommand = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
)

// PriorityStyle returns the color style for a priority glyph: low green,
// medium yellow, high red.
func PriorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityLow:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case models.PriorityHigh:
		return lipgloss.NewStyle().Foreground(ColorError)
	default:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	}
}
