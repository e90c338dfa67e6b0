// Package testutil provides testing utilities for the siteplan project.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/pablasso/siteplan/internal/plan"
	"github.com/pablasso/siteplan/internal/render"
)

// Call is one recorded presenter or backend call.
type Call struct {
	Name    string
	Region  render.Region
	Message string
	Content render.Content
}

func (c Call) String() string {
	switch c.Name {
	case "SetRegionLoading", "RenderRegion":
		return fmt.Sprintf("%s(%s)", c.Name, c.Region)
	case "SetRegionError":
		return fmt.Sprintf("%s(%s, %q)", c.Name, c.Region, c.Message)
	case "NotifyError":
		return fmt.Sprintf("%s(%q)", c.Name, c.Message)
	default:
		return c.Name
	}
}

// Recorder records calls in the order they happen. It implements
// submit.Presenter and shares its log with ScriptedBackend so tests can check
// the relative order of UI updates and network calls.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Names returns the recorded call names.
func (r *Recorder) Names() []string {
	calls := r.Calls()
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the first call with the given name, or -1.
func (r *Recorder) Index(name string) int {
	for i, c := range r.Calls() {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Count returns how many calls with the given name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls() {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns the most recent call with the given name.
func (r *Recorder) Find(name string) (Call, bool) {
	calls := r.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Name == name {
			return calls[i], true
		}
	}
	return Call{}, false
}

// Last returns the most recent call for a region with one of the given names.
func (r *Recorder) Last(region render.Region, names ...string) (Call, bool) {
	calls := r.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Region != region {
			continue
		}
		for _, n := range names {
			if calls[i].Name == n {
				return calls[i], true
			}
		}
	}
	return Call{}, false
}

func (r *Recorder) DisableTrigger() { r.record(Call{Name: "DisableTrigger"}) }
func (r *Recorder) EnableTrigger()  { r.record(Call{Name: "EnableTrigger"}) }
func (r *Recorder) ShowBusy()       { r.record(Call{Name: "ShowBusy"}) }
func (r *Recorder) HideBusy()       { r.record(Call{Name: "HideBusy"}) }
func (r *Recorder) RevealResults()  { r.record(Call{Name: "RevealResults"}) }

func (r *Recorder) SetRegionLoading(region render.Region) {
	r.record(Call{Name: "SetRegionLoading", Region: region})
}

func (r *Recorder) SetRegionError(region render.Region, message string) {
	r.record(Call{Name: "SetRegionError", Region: region, Message: message})
}

func (r *Recorder) RenderRegion(region render.Region, content render.Content) {
	r.record(Call{Name: "RenderRegion", Region: region, Content: content})
}

func (r *Recorder) NotifyError(message string) {
	r.record(Call{Name: "NotifyError", Message: message})
}

// ScriptedBackend returns canned results and records its calls on a Recorder.
type ScriptedBackend struct {
	Recorder *Recorder

	Calculation *plan.Calculation
	CalcErr     error
	Analysis    *plan.Analysis
	AIErr       error

	// CalcHook and AIHook run inside Calculate and GenerateAIPlan before they
	// return, letting tests interleave other work with an in-flight call.
	CalcHook func()
	AIHook   func()

	mu       sync.Mutex
	calcReqs []plan.Request
	aiReqs   []plan.Request
}

// Calculate implements submit.Backend.
func (b *ScriptedBackend) Calculate(ctx context.Context, req plan.Request) (*plan.Calculation, error) {
	b.mu.Lock()
	b.calcReqs = append(b.calcReqs, req)
	hook := b.CalcHook
	b.mu.Unlock()
	if b.Recorder != nil {
		b.Recorder.record(Call{Name: "Calculate"})
	}
	if hook != nil {
		hook()
	}
	return b.Calculation, b.CalcErr
}

// GenerateAIPlan implements submit.Backend.
func (b *ScriptedBackend) GenerateAIPlan(ctx context.Context, req plan.Request) (*plan.Analysis, error) {
	b.mu.Lock()
	b.aiReqs = append(b.aiReqs, req)
	hook := b.AIHook
	b.mu.Unlock()
	if b.Recorder != nil {
		b.Recorder.record(Call{Name: "GenerateAIPlan"})
	}
	if hook != nil {
		hook()
	}
	return b.Analysis, b.AIErr
}

// CalculateRequests returns the requests sent to Calculate.
func (b *ScriptedBackend) CalculateRequests() []plan.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]plan.Request(nil), b.calcReqs...)
}

// AIRequests returns the requests sent to GenerateAIPlan.
func (b *ScriptedBackend) AIRequests() []plan.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]plan.Request(nil), b.aiReqs...)
}
