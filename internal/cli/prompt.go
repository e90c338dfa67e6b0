package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/pablasso/siteplan/internal/plan"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

// Prompt describes one question.
type Prompt struct {
	Message  string
	Help     string
	Required bool
}

// Prompter asks the user for a value. Tests replace the survey implementation.
type Prompter interface {
	Input(ctx context.Context, p Prompt) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(ctx context.Context, p Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	var opts []survey.AskOpt
	if p.Required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	if err := survey.AskOne(&survey.Input{Message: p.Message, Help: p.Help}, &out, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// formQuestions are asked in form order for fields left empty.
var formQuestions = []struct {
	field  string
	prompt Prompt
}{
	{plan.FieldArea, Prompt{Message: "Plot area (sq.yd):", Required: true}},
	{plan.FieldFloors, Prompt{Message: "Floors above ground:", Required: true}},
	{plan.FieldTimeline, Prompt{Message: "Timeline (days):", Help: "Leave blank to estimate from the area"}},
	{plan.FieldLocation, Prompt{Message: "Location:", Help: "Optional"}},
}

// promptMissing asks for every form field that has no value yet.
func promptMissing(ctx context.Context, p Prompter, req plan.Request) (plan.Request, error) {
	for _, q := range formQuestions {
		if v, _ := req.Get(q.field); strings.TrimSpace(v) != "" {
			continue
		}
		v, err := p.Input(ctx, q.prompt)
		if err != nil {
			return plan.Request{}, err
		}
		req = req.With(q.field, v)
	}
	return req, nil
}
