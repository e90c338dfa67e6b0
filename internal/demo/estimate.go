package demo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pablasso/siteplan/internal/plan"
)

// Per-sq.ft estimation factors.
const (
	sqftPerSqYard    = 9
	cementPerSqft    = 0.4
	steelPerSqft     = 4
	sandPerSqft      = 0.816
	aggregatePerSqft = 0.608
	bricksPerSqft    = 8

	// Roughly one month per 500 sq.ft per storey.
	sqftPerMonth = 500
	daysPerMonth = 30
)

// Project is a parsed calculation request.
type Project struct {
	AreaSqYards float64
	Floors      int
	Timeline    *int // Nil means estimate it.
	Location    string
}

// ParseProject reads the form fields. A missing area or floors counts as zero;
// a present but invalid value is an error.
func ParseProject(req plan.Request) (Project, error) {
	var p Project

	if v, ok := req.Get(plan.FieldArea); ok {
		area, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsInf(area, 0) || math.IsNaN(area) {
			return Project{}, fmt.Errorf("invalid area %q: must be a number", v)
		}
		p.AreaSqYards = area
	}

	if v, ok := req.Get(plan.FieldFloors); ok {
		floors, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Project{}, fmt.Errorf("invalid floors %q: must be a whole number", v)
		}
		p.Floors = floors
	}

	if v, ok := req.Get(plan.FieldTimeline); ok && strings.TrimSpace(v) != "" {
		days, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Project{}, fmt.Errorf("invalid timeline %q: must be a whole number of days", v)
		}
		p.Timeline = &days
	}

	p.Location, _ = req.Get(plan.FieldLocation)
	return p, nil
}

// BuiltUpSqft is the total floor area in sq.ft, counting the ground floor.
func (p Project) BuiltUpSqft() float64 {
	return p.AreaSqYards * sqftPerSqYard * float64(p.Floors+1)
}

// Materials estimates material quantities. Area, sand and aggregate keep two
// decimals; the rest are whole units. Rounding is half to even.
func (p Project) Materials() plan.Materials {
	sqft := p.BuiltUpSqft()
	return plan.Materials{
		BuiltUpAreaSqft: round2(sqft),
		CementBags:      math.RoundToEven(sqft * cementPerSqft),
		SteelKg:         math.RoundToEven(sqft * steelPerSqft),
		SandCft:         round2(sqft * sandPerSqft),
		AggregateCft:    round2(sqft * aggregatePerSqft),
		Bricks:          math.RoundToEven(sqft * bricksPerSqft),
	}
}

// TimelineDays returns the requested timeline, or an estimate from the plot
// area and floor count when none was given. A given "0" is kept.
func (p Project) TimelineDays() int {
	if p.Timeline != nil {
		return *p.Timeline
	}
	plotSqft := p.AreaSqYards * sqftPerSqYard
	return int(math.RoundToEven(plotSqft / sqftPerMonth * daysPerMonth * float64(p.Floors+1)))
}

// Calculate runs the deterministic estimate for a request.
func Calculate(req plan.Request) (*plan.Calculation, error) {
	p, err := ParseProject(req)
	if err != nil {
		return nil, err
	}
	m := p.Materials()
	return &plan.Calculation{TimelineDays: p.TimelineDays(), Materials: &m}, nil
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
