// Package submit drives one planning submission from form submit to final render.
//
// The flow is modeled as a pure transition function over a small state machine.
// Transition never performs I/O; it returns effects that the Orchestrator
// interprets against a Presenter and a Backend.
package submit

import (
	"strconv"

	"github.com/pablasso/siteplan/internal/plan"
	"github.com/pablasso/siteplan/internal/render"
)

// State is the lifecycle state of the current submission.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateCalculationReady
	StateAIPending
	StateAIReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSubmitting:
		return "Submitting"
	case StateCalculationReady:
		return "CalculationReady"
	case StateAIPending:
		return "AIPending"
	case StateAIReady:
		return "AIReady"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the flow has finished.
func (s State) Terminal() bool {
	return s == StateIdle || s == StateAIReady || s == StateFailed
}

// Phase names the network phase a failure happened in.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseCalculation
	PhaseAI
)

func (p Phase) String() string {
	switch p {
	case PhaseCalculation:
		return "calculation"
	case PhaseAI:
		return "ai"
	default:
		return "none"
	}
}

// Machine is the state of one submission.
type Machine struct {
	State        State
	FailedPhase  Phase
	ID           string
	Request      plan.Request
	TimelineDays int
	// Message is the error shown to the user when State is StateFailed.
	Message string
	// Superseded is set when this submission replaced one still waiting for
	// its AI plan, whose regions stay loading until this submission reaches
	// its own AI phase.
	Superseded bool
}

// SupersededMessage is shown in AI regions left loading by a replaced
// submission when the replacing one fails before its AI phase.
const SupersededMessage = "Superseded by a new submission"


// Event is an input to Transition.
type Event interface {
	submissionID() string
}

// Submitted starts a new submission.
type Submitted struct {
	ID      string
	Request plan.Request
}

// CalculationSucceeded carries a validated calculation result.
type CalculationSucceeded struct {
	ID     string
	Result *plan.Calculation
}

// CalculationFailed carries a transport or validation error from the calculation call.
type CalculationFailed struct {
	ID  string
	Err error
}

// AIPhaseStarted moves a ready calculation into the AI phase.
type AIPhaseStarted struct {
	ID string
}

// AIPlanSucceeded carries the AI analysis.
type AIPlanSucceeded struct {
	ID       string
	Analysis *plan.Analysis
}

// AIPlanFailed carries a transport or service error from the AI call.
type AIPlanFailed struct {
	ID  string
	Err error
}

func (e Submitted) submissionID() string            { return e.ID }
func (e CalculationSucceeded) submissionID() string { return e.ID }
func (e CalculationFailed) submissionID() string    { return e.ID }
func (e AIPhaseStarted) submissionID() string       { return e.ID }
func (e AIPlanSucceeded) submissionID() string      { return e.ID }
func (e AIPlanFailed) submissionID() string         { return e.ID }

// Transition applies ev to m and returns the next machine with the effects to
// perform, in order. Events for another submission and events that are not
// valid in the current state are ignored.
func Transition(m Machine, ev Event) (Machine, []Effect) {
	if s, ok := ev.(Submitted); ok {
		if m.State == StateSubmitting {
			return m, nil
		}
		next := Machine{
			State:      StateSubmitting,
			ID:         s.ID,
			Request:    s.Request,
			Superseded: m.State == StateAIPending,
		}
		return next, []Effect{
			DisableTrigger{},
			ShowBusy{},
			RequestCalculation{ID: s.ID, Request: s.Request},
		}
	}

	if ev.submissionID() != m.ID {
		return m, nil
	}

	switch ev := ev.(type) {
	case CalculationSucceeded:
		if m.State != StateSubmitting || ev.Result == nil {
			return m, nil
		}
		m.State = StateCalculationReady
		m.TimelineDays = ev.Result.TimelineDays
		m.Superseded = false
		return m, []Effect{
			HideBusy{},
			EnableTrigger{},
			RevealResults{},
			RenderRegion{Region: render.RegionSummary, Content: render.Summary(ev.Result)},
			RenderRegion{Region: render.RegionMaterials, Content: render.Materials(ev.Result.Materials)},
		}

	case CalculationFailed:
		if m.State != StateSubmitting {
			return m, nil
		}
		m.State = StateFailed
		m.FailedPhase = PhaseCalculation
		m.Message = errorMessage(ev.Err)
		effects := []Effect{HideBusy{}}
		if m.Superseded {
			for _, r := range render.AIRegions {
				effects = append(effects, SetRegionError{Region: r, Message: SupersededMessage})
			}
			m.Superseded = false
		}
		return m, append(effects, NotifyError{Message: m.Message}, EnableTrigger{})

	case AIPhaseStarted:
		if m.State != StateCalculationReady {
			return m, nil
		}
		m.State = StateAIPending
		effects := make([]Effect, 0, len(render.AIRegions)+1)
		for _, r := range render.AIRegions {
			effects = append(effects, SetRegionLoading{Region: r})
		}
		aiRequest := m.Request.With(plan.FieldTimelineDays, strconv.Itoa(m.TimelineDays))
		return m, append(effects, RequestAIPlan{ID: m.ID, Request: aiRequest})

	case AIPlanSucceeded:
		if m.State != StateAIPending {
			return m, nil
		}
		m.State = StateAIReady
		effects := make([]Effect, 0, len(render.AIRegions))
		for _, r := range render.AIRegions {
			content, err := render.AIRegion(r, ev.Analysis)
			if err != nil {
				effects = append(effects, SetRegionError{Region: r, Message: err.Error()})
				continue
			}
			effects = append(effects, RenderRegion{Region: r, Content: content})
		}
		return m, effects

	case AIPlanFailed:
		if m.State != StateAIPending {
			return m, nil
		}
		m.State = StateFailed
		m.FailedPhase = PhaseAI
		m.Message = errorMessage(ev.Err)
		effects := make([]Effect, 0, len(render.AIRegions))
		for _, r := range render.AIRegions {
			effects = append(effects, SetRegionError{Region: r, Message: m.Message})
		}
		return m, effects
	}

	return m, nil
}

func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
