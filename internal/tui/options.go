package tui

import (
	"time"

	"go.uber.org/zap"

	"github.com/pablasso/siteplan/internal/demo"
	"github.com/pablasso/siteplan/internal/submit"
)

// Options configures TUI startup behavior.
type Options struct {
	// Server is the planning service base URL. Ignored in demo mode.
	Server  string
	Timeout time.Duration
	Logger  *zap.Logger
	// Values pre-fills the form.
	Values map[string]string
	Demo   *DemoOptions

	// Backend replaces the HTTP client. Used by tests.
	Backend submit.Backend
}

// DemoOptions configure demo mode when starting the TUI. The demo service is
// started on a loopback port for the lifetime of the program.
type DemoOptions struct {
	Scenario demo.Scenario
	AIDelay  time.Duration
}

// DefaultDemoAIDelay keeps the AI loading state on screen long enough to see.
const DefaultDemoAIDelay = 1500 * time.Millisecond
