package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pablasso/siteplan/internal/plan"
)

// ErrMalformedCount is returned when a worker count is not an integer.
var ErrMalformedCount = errors.New("malformed worker count")

const workforceUnit = " Daily"

// Summary renders the headline timeline and built-up area.
func Summary(c *plan.Calculation) Content {
	lines := []Line{
		{Label: "Timeline", Value: fmt.Sprintf("%d Days", c.TimelineDays)},
	}
	if c.Materials != nil {
		lines = append(lines, Line{
			Label: "Built-up Area",
			Value: plan.FormatNumber(c.Materials.BuiltUpAreaSqft) + " sq.ft",
		})
	}
	return Content{Lines: lines}
}

// Materials renders the material estimate in its fixed order.
func Materials(m *plan.Materials) Content {
	if m == nil {
		return Placeholder("Material data not available.")
	}
	return Content{
		Heading: "Material Estimate",
		Lines: []Line{
			{Label: "Cement Bags", Value: plan.FormatNumber(m.CementBags)},
			{Label: "Steel (Kg)", Value: plan.FormatNumber(m.SteelKg)},
			{Label: "Sand (cft)", Value: plan.FormatNumber(m.SandCft)},
			{Label: "Aggregate (cft)", Value: plan.FormatNumber(m.AggregateCft)},
			{Label: "Bricks", Value: plan.FormatNumber(m.Bricks)},
		},
	}
}

// AIRegion renders one AI region from the analysis. Each region only looks at
// its own source field, so a missing field never affects the others.
func AIRegion(r Region, a *plan.Analysis) (Content, error) {
	if a == nil {
		a = &plan.Analysis{}
	}
	switch r {
	case RegionWorkforce:
		return Workforce(a)
	case RegionSchedule:
		return Schedule(a), nil
	case RegionLabor:
		return Labor(a), nil
	case RegionCost:
		return Cost(a), nil
	case RegionBlueprint:
		return Blueprint(a), nil
	default:
		return Content{}, fmt.Errorf("region %s is not rendered from the AI plan", r)
	}
}

// Workforce sums the worker requirements into a daily headcount.
func Workforce(a *plan.Analysis) (Content, error) {
	if a.WorkerRequirements == nil {
		return Content{Unavailable: true, Value: "--"}, nil
	}
	total := 0
	for _, p := range *a.WorkerRequirements {
		n, err := ParseCount(p.Value.String())
		if err != nil {
			return Content{}, fmt.Errorf("%s: %w", p.Key, err)
		}
		if (n > 0 && total > math.MaxInt-n) || (n < 0 && total < math.MinInt-n) {
			return Content{}, fmt.Errorf("%s: %w: total out of range", p.Key, ErrMalformedCount)
		}
		total += n
	}
	return Content{Value: strconv.Itoa(total) + workforceUnit}, nil
}

// ParseCount coerces a worker count to an integer. Integral decimals such as
// "5.0" are accepted; anything else, including values outside the int range,
// is ErrMalformedCount.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCount, s)
	}
	return int(f), nil
}

// Schedule lists the construction phases in the order received.
func Schedule(a *plan.Analysis) Content {
	if a.SchedulePhases == nil {
		return Placeholder("Schedule data not available.")
	}
	lines := make([]Line, 0, len(a.SchedulePhases))
	for _, phase := range a.SchedulePhases {
		lines = append(lines, Line{
			Label:  Clean(phase.Name.String()),
			Value:  Clean(phase.DurationWeeks.String()) + " weeks",
			Detail: Clean(phase.Description.String()),
		})
	}
	return Content{Heading: "Construction Schedule", Lines: lines}
}

// Labor lists worker roles as uppercase labels.
func Labor(a *plan.Analysis) Content {
	if a.WorkerRequirements == nil {
		return Placeholder("Labor data not available.")
	}
	lines := make([]Line, 0, len(*a.WorkerRequirements))
	for _, p := range *a.WorkerRequirements {
		lines = append(lines, Line{
			Label: strings.ToUpper(strings.ReplaceAll(Clean(p.Key), "_", " ")),
			Value: Clean(p.Value.String()),
		})
	}
	return Content{Heading: "Labor Requirements", Lines: lines}
}

// Cost lists the cost breakdown with uppercase category labels.
func Cost(a *plan.Analysis) Content {
	if a.CostBreakdown == nil {
		return Placeholder("Cost data not available.")
	}
	lines := make([]Line, 0, len(*a.CostBreakdown))
	for _, p := range *a.CostBreakdown {
		lines = append(lines, Line{
			Label: strings.ToUpper(Clean(p.Key)),
			Value: Clean(p.Value.String()),
		})
	}
	return Content{Heading: "Cost Breakdown", Lines: lines}
}

// Blueprint renders the architectural suggestion.
func Blueprint(a *plan.Analysis) Content {
	if a.Blueprint == nil {
		return Placeholder("Blueprint data not available.")
	}
	return Content{
		Heading: "Architectural Suggestions",
		Lines: []Line{
			{Label: "Layout", Value: Clean(a.Blueprint.RoomConfiguration.String())},
			{Detail: Clean(a.Blueprint.Description.String())},
		},
	}
}
