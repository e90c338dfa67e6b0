package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/siteplan/internal/tui/views"
)

func TestModel_View_TerminalTooSmall(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		expectSmall bool
	}{
		{
			name:        "exactly minimum size",
			width:       MinTerminalWidth,
			height:      MinTerminalHeight,
			expectSmall: false,
		},
		{
			name:        "width too small",
			width:       MinTerminalWidth - 1,
			height:      MinTerminalHeight,
			expectSmall: true,
		},
		{
			name:        "height too small",
			width:       MinTerminalWidth,
			height:      MinTerminalHeight - 1,
			expectSmall: true,
		},
		{
			name:        "both dimensions too small",
			width:       MinTerminalWidth - 10,
			height:      MinTerminalHeight - 5,
			expectSmall: true,
		},
		{
			name:        "larger than minimum",
			width:       100,
			height:      50,
			expectSmall: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = newModel(views.PlannerConfig{})
			m, _ = m.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})

			view := m.View()

			if tt.expectSmall {
				if !strings.Contains(view, "Terminal too small") {
					t.Error("expected view to contain 'Terminal too small'")
				}
				if !strings.Contains(view, "Minimum:") || !strings.Contains(view, "Current:") {
					t.Error("expected minimum and current dimensions in warning")
				}
			} else {
				if strings.Contains(view, "Terminal too small") {
					t.Error("expected view NOT to contain 'Terminal too small'")
				}
				if !strings.Contains(view, "Construction Planner") {
					t.Error("expected planner view")
				}
			}
		})
	}
}

func TestModel_Init(t *testing.T) {
	m := newModel(views.PlannerConfig{})
	if m.Init() == nil {
		t.Error("expected Init to start the cursor blink")
	}
}

func TestProgramSender_NilProgram(t *testing.T) {
	s := &programSender{}
	// Must not panic before the program is attached.
	s.Send(tea.QuitMsg{})
}
