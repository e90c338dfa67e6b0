package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/pablasso/siteplan/internal/render"
)

func stripAll(lines []string) string {
	return ansi.Strip(strings.Join(lines, "\n"))
}

func TestRegionLines_Loading(t *testing.T) {
	got := stripAll(RegionLines(render.RegionWorkforce, RegionState{Status: RegionLoading}, "*"))
	if got != "* Analyzing..." {
		t.Errorf("unexpected workforce loading text %q", got)
	}

	got = stripAll(RegionLines(render.RegionSchedule, RegionState{Status: RegionLoading}, ""))
	if got != "AI is analyzing project details..." {
		t.Errorf("unexpected schedule loading text %q", got)
	}
}

func TestRegionLines_Failed(t *testing.T) {
	state := RegionState{Status: RegionFailed, Message: "AI Service unavailable"}

	if got := stripAll(RegionLines(render.RegionWorkforce, state, "")); got != "Error\nAI Service unavailable" {
		t.Errorf("unexpected workforce error text %q", got)
	}
	if got := stripAll(RegionLines(render.RegionCost, state, "")); got != "AI Analysis Failed: AI Service unavailable" {
		t.Errorf("unexpected cost error text %q", got)
	}
	if got := stripAll(RegionLines(render.RegionWorkforce, RegionState{Status: RegionFailed}, "")); got != "Error" {
		t.Errorf("unexpected bare workforce error text %q", got)
	}
}

func TestRegionLines_Ready(t *testing.T) {
	state := RegionState{Status: RegionReady, Content: render.Content{
		Heading: "Architectural Suggestions",
		Lines: []render.Line{
			{Label: "Layout", Value: "2BHK per floor"},
			{Label: "Foundation", Value: "3 weeks", Detail: "Footings"},
		},
	}}
	got := stripAll(RegionLines(render.RegionBlueprint, state, ""))

	for _, want := range []string{"Architectural Suggestions", "Layout", "2BHK per floor", "3 weeks", "  Footings"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestRegionLines_Unavailable(t *testing.T) {
	state := RegionState{Status: RegionReady, Content: render.Placeholder("Blueprint data not available.")}
	if got := stripAll(RegionLines(render.RegionBlueprint, state, "")); got != "Blueprint data not available." {
		t.Errorf("unexpected placeholder %q", got)
	}
}

func TestRegionLines_Empty(t *testing.T) {
	if lines := RegionLines(render.RegionSummary, RegionState{}, ""); lines != nil {
		t.Errorf("expected no lines, got %v", lines)
	}
}

func TestPanel(t *testing.T) {
	out := ansi.Strip(Panel("Materials", []string{"Cement Bags 480"}, 40))
	if !strings.Contains(out, "Materials") || !strings.Contains(out, "Cement Bags 480") {
		t.Errorf("unexpected panel %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := len([]rune(line)); w != 40 {
			t.Errorf("expected panel width 40, got %d for %q", w, line)
		}
	}
}
