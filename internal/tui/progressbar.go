package tui

import (
	"github.com/charmbracelet/bubbles/progress"
)

// ProgressBar wraps the charmbracelet/bubbles progress bar with questlog
// styling. Supports static rendering and NO_COLOR compatibility.
type ProgressBar struct {
	bar   progress.Model
	width int
}

// NewProgressBar creates a progress bar of the given width. A gradient is
// used when the terminal supports color, a solid fill otherwise.
func NewProgressBar(width int) *ProgressBar {
	var bar progress.Model
	if HasColorSupport() {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithScaledGradient("#0087AF", "#00D7FF"),
		)
	} else {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithSolidFill("#808080"),
		)
	}
	return &ProgressBar{bar: bar, width: width}
}

// Render returns the bar as a string for the given percentage (0-100).
// Uses ViewAs for static rendering (no animation).
func (pb *ProgressBar) Render(pct float64) string {
	frac := pct / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return pb.bar.ViewAs(frac)
}

// Width returns the configured width of the progress bar.
func (pb *ProgressBar) Width() int {
	return pb.width
}
