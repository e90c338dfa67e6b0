// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#D7875F") // Brick orange accent
	secondaryColor = lipgloss.Color("#6C6C6C") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for values
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors
	disabledColor  = lipgloss.Color("#444444")

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints, placeholders and help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for the focused field and active tab
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// LabelStyle for form labels and result row labels
	LabelStyle = lipgloss.NewStyle().
			Width(18)

	// ValueStyle for computed values
	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// ButtonStyle for the submit trigger
	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 2)

	// DisabledButtonStyle for the submit trigger while a calculation runs
	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Background(disabledColor).
				Padding(0, 2)

	// TabStyle for inactive tabs
	TabStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Padding(0, 1)

	// ActiveTabStyle for the selected tab
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Underline(true).
			Padding(0, 1)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	// ModalStyle for blocking error dialogs
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(errorColor).
			Padding(1, 3)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
