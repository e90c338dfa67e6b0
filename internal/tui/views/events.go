package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/siteplan/internal/render"
	"github.com/pablasso/siteplan/internal/submit"
	"github.com/pablasso/siteplan/internal/tui/msgs"
)

// Sender delivers messages to a running program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// PlannerEvents implements submit.Presenter by forwarding each call to the
// program as a message, so every UI update happens on the Bubble Tea loop.
type PlannerEvents struct {
	program Sender
}

// NewPlannerEvents creates a Presenter that sends to program.
func NewPlannerEvents(program Sender) *PlannerEvents {
	return &PlannerEvents{program: program}
}

func (e *PlannerEvents) DisableTrigger() { e.program.Send(msgs.TriggerMsg{Enabled: false}) }
func (e *PlannerEvents) EnableTrigger()  { e.program.Send(msgs.TriggerMsg{Enabled: true}) }
func (e *PlannerEvents) ShowBusy()       { e.program.Send(msgs.BusyMsg{Busy: true}) }
func (e *PlannerEvents) HideBusy()       { e.program.Send(msgs.BusyMsg{Busy: false}) }
func (e *PlannerEvents) RevealResults()  { e.program.Send(msgs.RevealResultsMsg{}) }

func (e *PlannerEvents) SetRegionLoading(region render.Region) {
	e.program.Send(msgs.RegionLoadingMsg{Region: region})
}

func (e *PlannerEvents) SetRegionError(region render.Region, message string) {
	e.program.Send(msgs.RegionErrorMsg{Region: region, Message: message})
}

func (e *PlannerEvents) RenderRegion(region render.Region, content render.Content) {
	e.program.Send(msgs.RegionRenderedMsg{Region: region, Content: content})
}

func (e *PlannerEvents) NotifyError(message string) {
	e.program.Send(msgs.NotifyErrorMsg{Message: message})
}

var _ submit.Presenter = (*PlannerEvents)(nil)
