package plan

import (
	"errors"
	"strconv"
)

// Materials holds the deterministic material estimate for a project.
type Materials struct {
	BuiltUpAreaSqft float64 `json:"built_up_area_sqft"`
	CementBags      float64 `json:"cement_bags"`
	SteelKg         float64 `json:"steel_kg"`
	SandCft         float64 `json:"sand_cft"`
	AggregateCft    float64 `json:"aggregate_cft"`
	Bricks          float64 `json:"bricks"`
}

// Calculation is the response of the instant calculation endpoint.
type Calculation struct {
	TimelineDays int        `json:"timeline_days"`
	Materials    *Materials `json:"calculations,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// Validate checks that a successful calculation carries its results.
func (c *Calculation) Validate() error {
	if c.Error != "" {
		return errors.New(c.Error)
	}
	if c.Materials == nil {
		return errors.New("calculation response missing results")
	}
	return nil
}

// FormatNumber renders a numeric value the way the service reports it:
// integral values have no decimal point, others use the shortest exact form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
