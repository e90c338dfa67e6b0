package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/siteplan/internal/tui/styles"
)

// StatusBar renders a bottom help bar with an optional right-aligned state.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar for the given width. Items are joined with
// " • "; state, when set, is pushed to the right edge if it fits.
func (s StatusBar) Render(width int, items []string, state string) string {
	left := strings.Join(items, " • ")
	if state == "" {
		return styles.StatusBarStyle.Width(width).Render(left)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(state)
	if gap < 1 {
		return styles.StatusBarStyle.Width(width).Render(left + " • " + state)
	}
	return styles.StatusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + state)
}
