// Package msgs defines the messages that carry submission updates into the TUI.
package msgs

import "github.com/pablasso/siteplan/internal/render"

// TriggerMsg enables or disables the submit trigger.
type TriggerMsg struct {
	Enabled bool
}

// BusyMsg shows or hides the calculation busy indicator.
type BusyMsg struct {
	Busy bool
}

// RevealResultsMsg makes the results section visible.
type RevealResultsMsg struct{}

// RegionLoadingMsg puts a region into its loading state.
type RegionLoadingMsg struct {
	Region render.Region
}

// RegionErrorMsg puts a region into its error state.
type RegionErrorMsg struct {
	Region  render.Region
	Message string
}

// RegionRenderedMsg fills a region with content.
type RegionRenderedMsg struct {
	Region  render.Region
	Content render.Content
}

// NotifyErrorMsg raises a blocking error dialog.
type NotifyErrorMsg struct {
	Message string
}

// SubmitRejectedMsg reports a submit attempted while a calculation was running.
type SubmitRejectedMsg struct{}

// SubmitDoneMsg reports that a submission returned. Err is set when it could
// not be started.
type SubmitDoneMsg struct {
	Err error
}
