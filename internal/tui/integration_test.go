package tui

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/siteplan/internal/api"
	"github.com/pablasso/siteplan/internal/demo"
	"github.com/pablasso/siteplan/internal/plan"
	"github.com/pablasso/siteplan/internal/render"
	"github.com/pablasso/siteplan/internal/submit"
	"github.com/pablasso/siteplan/internal/tui/components"
	"github.com/pablasso/siteplan/internal/tui/views"
)

// queueSender collects presenter messages so the test can feed them to the
// model the way the program loop would.
type queueSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (q *queueSender) Send(msg tea.Msg) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, msg)
}

func (q *queueSender) drain() []tea.Msg {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.msgs
	q.msgs = nil
	return out
}

type testApp struct {
	model  Model
	sender *queueSender
}

// newTestApp wires a model to a demo service running the given scenario.
func newTestApp(t *testing.T, scenario demo.Scenario, values map[string]string) *testApp {
	t.Helper()

	srv := httptest.NewServer(demo.NewServer(demo.Config{Scenario: scenario}).Handler())
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	sender := &queueSender{}
	orch := submit.New(client, views.NewPlannerEvents(sender))
	app := &testApp{
		model: newModel(views.PlannerConfig{
			Submitter: orch,
			Context:   context.Background(),
			Values:    values,
		}),
		sender: sender,
	}
	app.update(tea.WindowSizeMsg{Width: 120, Height: 50})
	return app
}

func (a *testApp) update(msg tea.Msg) tea.Cmd {
	next, cmd := a.model.Update(msg)
	a.model = next.(Model)
	return cmd
}

// submit presses enter, runs the submission to completion and replays every
// message it produced.
func (a *testApp) submit(t *testing.T) {
	t.Helper()
	cmd := a.update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected enter to start a submission")
	}
	done := cmd()
	for _, msg := range a.sender.drain() {
		a.update(msg)
	}
	a.update(done)
}

func projectValues() map[string]string {
	return map[string]string{plan.FieldArea: "150", plan.FieldFloors: "1"}
}

func TestIntegration_SuccessfulSubmission(t *testing.T) {
	app := newTestApp(t, demo.ScenarioSuccess, projectValues())
	app.submit(t)

	p := app.model.planner
	if !p.Revealed() {
		t.Fatal("expected results to be revealed")
	}
	if !p.TriggerEnabled() || p.Busy() {
		t.Errorf("expected idle enabled trigger, got enabled=%v busy=%v", p.TriggerEnabled(), p.Busy())
	}
	for _, r := range append([]render.Region{render.RegionSummary, render.RegionMaterials}, render.AIRegions...) {
		if st := p.Region(r); st.Status != components.RegionReady {
			t.Errorf("expected %s ready, got %+v", r, st)
		}
	}

	view := app.model.View()
	for _, want := range []string{"162 Days", "2700 sq.ft", "Cement Bags", "Daily", "Foundation"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestIntegration_AIFailure(t *testing.T) {
	app := newTestApp(t, demo.ScenarioAIFail, projectValues())
	app.submit(t)

	p := app.model.planner
	if p.Region(render.RegionMaterials).Status != components.RegionReady {
		t.Error("expected calculation results to stay visible")
	}
	for _, r := range render.AIRegions {
		st := p.Region(r)
		if st.Status != components.RegionFailed || st.Message != "AI Service unavailable" {
			t.Errorf("expected %s failed with service message, got %+v", r, st)
		}
	}
	if p.Modal() != "" {
		t.Errorf("AI failures must not raise the dialog, got %q", p.Modal())
	}
	if !strings.Contains(app.model.View(), "AI Analysis Failed: AI Service unavailable") {
		t.Error("expected AI failure placeholder in view")
	}
}

func TestIntegration_CalculationFailure(t *testing.T) {
	app := newTestApp(t, demo.ScenarioCalcFail, projectValues())
	app.submit(t)

	p := app.model.planner
	if p.Revealed() {
		t.Error("results must stay hidden after a calculation failure")
	}
	if !strings.Contains(p.Modal(), "estimator offline") {
		t.Errorf("expected service message in dialog, got %q", p.Modal())
	}
	if !p.TriggerEnabled() {
		t.Error("expected trigger re-enabled")
	}

	app.update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.model.planner.Modal() != "" {
		t.Error("expected enter to dismiss the dialog")
	}
}

func TestIntegration_MalformedWorkforce(t *testing.T) {
	app := newTestApp(t, demo.ScenarioMalformed, projectValues())
	app.submit(t)

	p := app.model.planner
	if st := p.Region(render.RegionWorkforce); st.Status != components.RegionFailed {
		t.Errorf("expected workforce error, got %+v", st)
	}
	if st := p.Region(render.RegionLabor); st.Status != components.RegionReady {
		t.Errorf("expected labor to render the raw counts, got %+v", st)
	}
}

func TestIntegration_PartialAnalysis(t *testing.T) {
	app := newTestApp(t, demo.ScenarioPartial, projectValues())
	app.submit(t)

	st := app.model.planner.Region(render.RegionBlueprint)
	if st.Status != components.RegionReady || !st.Content.Unavailable {
		t.Errorf("expected blueprint placeholder, got %+v", st)
	}
}

func TestIntegration_Resubmit(t *testing.T) {
	app := newTestApp(t, demo.ScenarioSuccess, projectValues())
	app.submit(t)
	app.submit(t)

	if !app.model.planner.TriggerEnabled() {
		t.Error("expected trigger enabled after the second submission")
	}
	if app.model.planner.Region(render.RegionSchedule).Status != components.RegionReady {
		t.Error("expected schedule ready after the second submission")
	}
}
