package components

import (
	"strings"

	"github.com/pablasso/siteplan/internal/tui/styles"
)

// Tabs renders a horizontal tab bar.
type Tabs struct {
	Labels []string
	Active int
}

// Next returns the index after Active, wrapping around.
func (t Tabs) Next() int {
	if len(t.Labels) == 0 {
		return 0
	}
	return (t.Active + 1) % len(t.Labels)
}

// Prev returns the index before Active, wrapping around.
func (t Tabs) Prev() int {
	if len(t.Labels) == 0 {
		return 0
	}
	return (t.Active - 1 + len(t.Labels)) % len(t.Labels)
}

// View renders the tab labels with the active one highlighted.
func (t Tabs) View() string {
	parts := make([]string, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts[i] = styles.ActiveTabStyle.Render(label)
		} else {
			parts[i] = styles.TabStyle.Render(label)
		}
	}
	return strings.Join(parts, styles.SubtleStyle.Render("│"))
}
