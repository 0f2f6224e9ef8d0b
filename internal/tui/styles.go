// Package tui provides terminal rendering for questlog progress results.
//
// This package provides a centralized style system using Lip Gloss for
// consistent output styling. All colors use AdaptiveColor for light/dark
// terminal support. Status displays keep triple redundancy: icon + color +
// text, so no state is communicated by color alone.
//
// Call CheckNoColor() at the start of commands to respect the NO_COLOR
// environment variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/questlabs/questlog/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for active states and headlines.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for completed items.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for urgent and estimated values.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for overdue items and degraded results.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// TitleStyle renders quest titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	// MutedStyle renders secondary detail lines.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// ErrorStyle renders degraded-result error strings.
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	// WarnStyle renders estimated (not measured) figures.
	WarnStyle = lipgloss.NewStyle().Foreground(ColorWarning)
)

// CheckNoColor disables lipgloss colors when the terminal does not support
// them, per the NO_COLOR standard.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or
// TERM=dumb. This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// ProgressStatusIcon returns the icon for a normalized progress status.
// Icons pair with color and text for triple redundancy.
func ProgressStatusIcon(status constants.ProgressStatus) string {
	switch status {
	case constants.ProgressCompleted:
		return "✓"
	case constants.ProgressInProgress:
		return "◐"
	case constants.ProgressNotStarted:
		return "○"
	default:
		return "?"
	}
}

// ProgressStatusStyle returns the style for a normalized progress status.
func ProgressStatusStyle(status constants.ProgressStatus) lipgloss.Style {
	switch status {
	case constants.ProgressCompleted:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case constants.ProgressInProgress:
		return lipgloss.NewStyle().Foreground(ColorPrimary)
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted)
	}
}
