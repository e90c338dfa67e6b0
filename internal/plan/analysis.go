package plan

import "errors"

// Phase is one entry of the construction schedule.
type Phase struct {
	Name          Text `json:"phase"`
	DurationWeeks Text `json:"duration_weeks"`
	Description   Text `json:"description"`
}

// Blueprint holds the architectural suggestion for the project.
type Blueprint struct {
	RoomConfiguration Text `json:"room_configuration"`
	Description       Text `json:"description"`
}

// Analysis is the AI-generated plan. Every field is optional; a nil field means
// the model did not provide it.
type Analysis struct {
	WorkerRequirements *Pairs     `json:"worker_requirements,omitempty"`
	SchedulePhases     []Phase    `json:"construction_schedule_phases,omitempty"`
	CostBreakdown      *Pairs     `json:"cost_breakdown_percentage,omitempty"`
	Blueprint          *Blueprint `json:"blueprint_suggestions,omitempty"`
}

// AIPlan is the response of the AI plan endpoint.
type AIPlan struct {
	Analysis *Analysis `json:"ai_analysis,omitempty"`
	Error    string    `json:"error,omitempty"`
	Raw      string    `json:"raw,omitempty"`
}

// Validate checks that a successful response carries an analysis.
func (p *AIPlan) Validate() error {
	if p.Error != "" {
		return errors.New(p.Error)
	}
	if p.Analysis == nil {
		return errors.New("AI response missing analysis")
	}
	return nil
}
