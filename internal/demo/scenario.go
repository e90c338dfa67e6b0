// Package demo is a self-contained planning service used for demos and
// local development. It implements both endpoints with a deterministic
// estimator and a canned AI analysis.
package demo

import (
	"fmt"
	"strings"
)

// Scenario controls how the demo service answers.
type Scenario string

const (
	ScenarioSuccess   Scenario = "success"   // Both calls succeed with full data
	ScenarioPartial   Scenario = "partial"   // AI plan omits the blueprint
	ScenarioAIFail    Scenario = "ai-fail"   // AI plan returns 503
	ScenarioMalformed Scenario = "malformed" // AI plan has a non-numeric worker count
	ScenarioCalcFail  Scenario = "calc-fail" // Calculation returns an error
)

// Scenarios lists every scenario in display order.
var Scenarios = []Scenario{
	ScenarioSuccess,
	ScenarioPartial,
	ScenarioAIFail,
	ScenarioMalformed,
	ScenarioCalcFail,
}

func ParseScenario(value string) (Scenario, error) {
	s := Scenario(strings.ToLower(strings.TrimSpace(value)))
	if s == "" {
		return ScenarioSuccess, nil
	}
	for _, known := range Scenarios {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid demo scenario %q (valid: success, partial, ai-fail, malformed, calc-fail)", value)
}
