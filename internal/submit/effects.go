package submit

import (
	"github.com/pablasso/siteplan/internal/plan"
	"github.com/pablasso/siteplan/internal/render"
)

// Effect is an action requested by Transition.
type Effect interface {
	effect()
}

// DisableTrigger disables the submit control.
type DisableTrigger struct{}

// EnableTrigger re-enables the submit control.
type EnableTrigger struct{}

// ShowBusy shows the busy indicator on the submit control.
type ShowBusy struct{}

// HideBusy hides the busy indicator.
type HideBusy struct{}

// RevealResults makes the results area visible.
type RevealResults struct{}

// RenderRegion replaces a region's content.
type RenderRegion struct {
	Region  render.Region
	Content render.Content
}

// SetRegionLoading shows the loading placeholder in a region.
type SetRegionLoading struct {
	Region render.Region
}

// SetRegionError shows the error placeholder in a region.
type SetRegionError struct {
	Region  render.Region
	Message string
}

// NotifyError shows a blocking error notification.
type NotifyError struct {
	Message string
}

// RequestCalculation issues the calculation call.
type RequestCalculation struct {
	ID      string
	Request plan.Request
}

// RequestAIPlan issues the AI plan call.
type RequestAIPlan struct {
	ID      string
	Request plan.Request
}

func (DisableTrigger) effect()     {}
func (EnableTrigger) effect()      {}
func (ShowBusy) effect()           {}
func (HideBusy) effect()           {}
func (RevealResults) effect()      {}
func (RenderRegion) effect()       {}
func (SetRegionLoading) effect()   {}
func (SetRegionError) effect()     {}
func (NotifyError) effect()        {}
func (RequestCalculation) effect() {}
func (RequestAIPlan) effect()      {}
