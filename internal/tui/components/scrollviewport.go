package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScrollViewport wraps bubbles/viewport.Model with a scrollbar. It shows one
// block of content at a time, such as the active results tab.
type ScrollViewport struct {
	viewport viewport.Model
	lines    []string
	width    int // total width including scrollbar
	height   int
}

// NewScrollViewport creates a ScrollViewport. The width includes 1 column for
// the scrollbar.
func NewScrollViewport(width, height int) ScrollViewport {
	vp := viewport.New(contentWidth(width), height)
	vp.SetContent("")
	return ScrollViewport{viewport: vp, width: width, height: height}
}

func contentWidth(width int) int {
	if width < 1 {
		return 0
	}
	return width - 1
}

// SetSize updates the viewport dimensions. Width includes the scrollbar column.
func (s *ScrollViewport) SetSize(width, height int) {
	if s.width == width && s.height == height {
		return
	}
	s.width = width
	s.height = height
	s.viewport.Width = contentWidth(width)
	s.viewport.Height = height
	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	// Clamp y-offset after resize.
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// SetLines replaces the content. With reset set the view returns to the top,
// otherwise the current offset is kept.
func (s *ScrollViewport) SetLines(lines []string, reset bool) {
	s.lines = append(s.lines[:0:0], lines...)
	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	if reset {
		s.viewport.GotoTop()
		return
	}
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// Update handles scrolling keys and mouse wheel events.
func (s ScrollViewport) Update(msg tea.Msg) (ScrollViewport, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// YOffset returns the current scroll offset.
func (s ScrollViewport) YOffset() int {
	return s.viewport.YOffset
}

// View renders the viewport content with a 1-column scrollbar on the right.
func (s ScrollViewport) View() string {
	contentLines := strings.Split(s.viewport.View(), "\n")
	scrollbarLines := strings.Split(RenderScrollbar(s.height, len(s.lines), s.viewport.YOffset), "\n")
	cw := contentWidth(s.width)

	var b strings.Builder
	for i := 0; i < s.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		b.WriteString(cl)
		// Pad content so the scrollbar aligns.
		if pad := cw - lipgloss.Width(cl); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if i < len(scrollbarLines) {
			b.WriteString(scrollbarLines[i])
		}
	}
	return b.String()
}
