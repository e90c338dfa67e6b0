package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/siteplan/internal/render"
	"github.com/pablasso/siteplan/internal/tui/styles"
)

// RegionStatus is the display state of one results region.
type RegionStatus int

const (
	RegionEmpty RegionStatus = iota
	RegionLoading
	RegionFailed
	RegionReady
)

// RegionState is what a results region currently shows.
type RegionState struct {
	Status  RegionStatus
	Message string
	Content render.Content
}

// RegionLines renders a region's state as display lines. spinner is shown in
// front of the loading text.
func RegionLines(region render.Region, state RegionState, spinner string) []string {
	switch state.Status {
	case RegionLoading:
		return []string{strings.TrimSpace(spinner + " " + styles.SubtleStyle.Render(render.LoadingText(region)))}
	case RegionFailed:
		lines := []string{styles.ErrorStyle.Render(render.ErrorText(region, state.Message))}
		// The workforce text is a bare "Error"; the reason goes underneath.
		if region == render.RegionWorkforce && state.Message != "" {
			lines = append(lines, styles.SubtleStyle.Render(state.Message))
		}
		return lines
	case RegionReady:
		return contentLines(state.Content)
	default:
		return nil
	}
}

func contentLines(c render.Content) []string {
	var lines []string
	if c.Heading != "" {
		lines = append(lines, styles.SelectedStyle.Render(c.Heading))
	}
	if c.Unavailable {
		text := c.Note
		if text == "" {
			text = c.Value
		}
		return append(lines, styles.SubtleStyle.Render(text))
	}
	if c.Value != "" {
		lines = append(lines, styles.ValueStyle.Render(c.Value))
	}
	for _, l := range c.Lines {
		switch {
		case l.Label != "" && l.Value != "":
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				styles.LabelStyle.Render(l.Label),
				styles.ValueStyle.Render(l.Value),
			))
		case l.Label != "":
			lines = append(lines, styles.LabelStyle.Render(l.Label))
		case l.Value != "":
			lines = append(lines, l.Value)
		}
		if l.Detail != "" {
			lines = append(lines, styles.SubtleStyle.Render("  "+l.Detail))
		}
	}
	return lines
}

// Panel renders lines inside a titled box of the given outer width.
func Panel(title string, lines []string, width int) string {
	body := strings.Join(lines, "\n")
	if title != "" {
		body = styles.SelectedStyle.Render(title) + "\n" + body
	}
	w := width - styles.BoxStyle.GetHorizontalBorderSize()
	if w < 1 {
		w = 1
	}
	return styles.BoxStyle.Width(w).Render(body)
}
