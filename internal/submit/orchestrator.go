package submit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/pablasso/siteplan/internal/plan"
	"github.com/pablasso/siteplan/internal/render"
)

// ErrSubmissionInFlight is returned by Submit while a calculation is running.
var ErrSubmissionInFlight = errors.New("a submission is already being calculated")

// Backend performs the two planning calls. Implementations report a non-empty
// error field in the response as an error.
type Backend interface {
	Calculate(ctx context.Context, req plan.Request) (*plan.Calculation, error)
	GenerateAIPlan(ctx context.Context, req plan.Request) (*plan.Analysis, error)
}

// Presenter receives UI updates. Calls are fire-and-forget.
type Presenter interface {
	DisableTrigger()
	EnableTrigger()
	ShowBusy()
	HideBusy()
	RevealResults()
	SetRegionLoading(region render.Region)
	SetRegionError(region render.Region, message string)
	RenderRegion(region render.Region, content render.Content)
	NotifyError(message string)
}

// Orchestrator runs submissions through the state machine.
type Orchestrator struct {
	backend   Backend
	presenter Presenter
	log       *zap.Logger
	newID     func() string

	mu      sync.Mutex
	machine Machine

	// presentMu keeps one batch of UI effects together when a superseded
	// submission's response lands while a new one is starting.
	presentMu sync.Mutex
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger used for transition logging.
func WithLogger(log *zap.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// WithIDGenerator replaces the submission ID source (useful for testing).
func WithIDGenerator(fn func() string) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// New creates an Orchestrator.
func New(backend Backend, presenter Presenter, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		backend:   backend,
		presenter: presenter,
		log:       zap.NewNop(),
		newID:     func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Snapshot returns the current machine.
func (o *Orchestrator) Snapshot() Machine {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.machine
}

// Submit runs one submission to a terminal state. It blocks until both calls
// have completed or the flow has failed. Flow errors are reported through the
// Presenter, never returned; the only error is ErrSubmissionInFlight.
//
// Submitting while an earlier submission waits for its AI plan supersedes it:
// the earlier AI response is dropped when it arrives. If the new calculation
// fails, the earlier loading regions are resolved with SupersededMessage.
func (o *Orchestrator) Submit(ctx context.Context, req plan.Request) error {
	o.mu.Lock()
	if o.machine.State == StateSubmitting {
		inFlight := o.machine.ID
		o.mu.Unlock()
		o.log.Warn("submission rejected", zap.String("in_flight", inFlight))
		return ErrSubmissionInFlight
	}
	id := o.newID()
	effects := o.dispatchLocked(Submitted{ID: id, Request: req})
	o.mu.Unlock()

	for len(effects) > 0 {
		next := o.apply(ctx, effects)
		if next == nil {
			break
		}
		effects = o.dispatch(next)
	}
	return nil
}

func (o *Orchestrator) dispatch(ev Event) []Effect {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dispatchLocked(ev)
}

func (o *Orchestrator) dispatchLocked(ev Event) []Effect {
	prev := o.machine
	next, effects := Transition(prev, ev)
	if effects == nil {
		if ev.submissionID() != prev.ID {
			o.log.Debug("dropped stale event",
				zap.String("submission", ev.submissionID()),
				zap.String("current", prev.ID),
				zap.String("event", fmt.Sprintf("%T", ev)),
			)
		}
		return nil
	}
	o.machine = next
	o.logTransition(prev, next)

	// CalculationReady is a pass-through: the AI phase starts as soon as the
	// calculation results have been presented.
	if next.State == StateCalculationReady {
		effects = append(effects, o.dispatchLocked(AIPhaseStarted{ID: next.ID})...)
	}
	return effects
}

func (o *Orchestrator) logTransition(prev, next Machine) {
	fields := []zap.Field{
		zap.String("submission", next.ID),
		zap.Stringer("from", prev.State),
		zap.Stringer("to", next.State),
	}
	if next.State == StateFailed {
		fields = append(fields,
			zap.Stringer("phase", next.FailedPhase),
			zap.String("message", next.Message),
		)
		o.log.Warn("submission failed", fields...)
		return
	}
	o.log.Info("submission transition", fields...)
}

// apply performs effects in order. Presentation effects go to the Presenter;
// a request effect performs the call and returns the resulting event.
func (o *Orchestrator) apply(ctx context.Context, effects []Effect) Event {
	o.presentMu.Lock()
	var pending Effect
	for _, eff := range effects {
		switch eff := eff.(type) {
		case DisableTrigger:
			o.presenter.DisableTrigger()
		case EnableTrigger:
			o.presenter.EnableTrigger()
		case ShowBusy:
			o.presenter.ShowBusy()
		case HideBusy:
			o.presenter.HideBusy()
		case RevealResults:
			o.presenter.RevealResults()
		case RenderRegion:
			o.presenter.RenderRegion(eff.Region, eff.Content)
		case SetRegionLoading:
			o.presenter.SetRegionLoading(eff.Region)
		case SetRegionError:
			o.presenter.SetRegionError(eff.Region, eff.Message)
		case NotifyError:
			o.presenter.NotifyError(eff.Message)
		case RequestCalculation, RequestAIPlan:
			pending = eff
		}
	}
	o.presentMu.Unlock()

	switch eff := pending.(type) {
	case RequestCalculation:
		result, err := o.backend.Calculate(ctx, eff.Request)
		if err == nil {
			if result == nil {
				err = errors.New("empty calculation response")
			} else {
				err = result.Validate()
			}
		}
		if err != nil {
			return CalculationFailed{ID: eff.ID, Err: err}
		}
		return CalculationSucceeded{ID: eff.ID, Result: result}

	case RequestAIPlan:
		analysis, err := o.backend.GenerateAIPlan(ctx, eff.Request)
		if err == nil && analysis == nil {
			err = errors.New("AI response missing analysis")
		}
		if err != nil {
			return AIPlanFailed{ID: eff.ID, Err: err}
		}
		return AIPlanSucceeded{ID: eff.ID, Analysis: analysis}
	}
	return nil
}
