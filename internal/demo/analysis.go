package demo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pablasso/siteplan/internal/plan"
)

// defaultAITimeline is used when the AI request carries no timeline_days.
const defaultAITimeline = 30

// phaseShares splits the schedule across the four standard phases.
var phaseShares = []struct {
	name        string
	share       float64
	description string
}{
	{"Foundation", 0.20, "Excavation, footings and plinth beam for a %s plot."},
	{"Structure", 0.35, "Columns, beams and slabs for %s."},
	{"Brickwork & Plastering", 0.25, "Masonry walls and internal plaster across %s."},
	{"Finishing (Electrical, Plumbing, Paint)", 0.20, "Services, fixtures and paint for %s."},
}

// AIProject is a parsed AI plan request.
type AIProject struct {
	Project
	TimelineDays int
}

// ParseAIProject reads an AI plan request. The timeline comes from the
// timeline_days field set after the calculation phase.
func ParseAIProject(req plan.Request) (AIProject, error) {
	p, err := ParseProject(req.With(plan.FieldTimeline, ""))
	if err != nil {
		return AIProject{}, err
	}
	ap := AIProject{Project: p, TimelineDays: defaultAITimeline}
	if v, ok := req.Get(plan.FieldTimelineDays); ok && strings.TrimSpace(v) != "" {
		days, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return AIProject{}, fmt.Errorf("invalid timeline_days %q: must be a whole number", v)
		}
		ap.TimelineDays = days
	}
	if strings.TrimSpace(ap.Location) == "" {
		ap.Location = "Standard"
	}
	return ap, nil
}

// Analysis builds a canned AI analysis scaled to the project and shaped by
// the scenario.
func Analysis(p AIProject, scenario Scenario) *plan.Analysis {
	sqft := p.BuiltUpSqft()

	masons := atLeast(1, int(math.Ceil(sqft/400)))
	workers := plan.Pairs{
		{Key: "masons", Value: count(masons)},
		{Key: "helpers", Value: count(masons * 2)},
		{Key: "bar_benders", Value: count(atLeast(1, int(math.Ceil(sqft/1000))))},
		{Key: "carpenters", Value: count(atLeast(1, int(math.Ceil(sqft/800))))},
		{Key: "supervisors", Value: count(1 + p.Floors/3)},
	}
	if scenario == ScenarioMalformed {
		workers[0].Value = "several"
	}

	costs := plan.Pairs{
		{Key: "labor", Value: "30%"},
		{Key: "material", Value: "50%"},
		{Key: "finishing", Value: "15%"},
		{Key: "overhead", Value: "5%"},
	}

	a := &plan.Analysis{
		WorkerRequirements: &workers,
		SchedulePhases:     schedule(p),
		CostBreakdown:      &costs,
	}
	if scenario != ScenarioPartial {
		a.Blueprint = &plan.Blueprint{
			RoomConfiguration: plan.Text(roomConfiguration(p.AreaSqYards * sqftPerSqYard)),
			Description: plan.Text(fmt.Sprintf(
				"G+%d layout for %s conditions. Keep the staircase on the shared wall and stack wet areas vertically to shorten plumbing runs.",
				p.Floors, p.Location,
			)),
		}
	}
	return a
}

func schedule(p AIProject) []plan.Phase {
	weeks := atLeast(len(phaseShares), int(math.Ceil(float64(p.TimelineDays)/7)))
	label := fmt.Sprintf("G+%d", p.Floors)

	phases := make([]plan.Phase, 0, len(phaseShares))
	remaining := weeks
	for i, ps := range phaseShares {
		w := atLeast(1, int(math.Round(float64(weeks)*ps.share)))
		if i == len(phaseShares)-1 {
			w = atLeast(1, remaining)
		}
		remaining -= w
		target := label
		if i == 0 {
			target = fmt.Sprintf("%s sq.yd", plan.FormatNumber(p.AreaSqYards))
		}
		phases = append(phases, plan.Phase{
			Name:          plan.Text(ps.name),
			DurationWeeks: count(w),
			Description:   plan.Text(fmt.Sprintf(ps.description, target)),
		})
	}
	return phases
}

func roomConfiguration(plotSqft float64) string {
	switch {
	case plotSqft < 900:
		return "1BHK per floor"
	case plotSqft < 1500:
		return "2BHK per floor"
	default:
		return "3BHK per floor"
	}
}

func count(n int) plan.Text {
	return plan.Text(strconv.Itoa(n))
}

func atLeast(lo, n int) int {
	if n < lo {
		return lo
	}
	return n
}
