package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pablasso/siteplan/internal/api"
	"github.com/pablasso/siteplan/internal/display"
	"github.com/pablasso/siteplan/internal/plan"
	"github.com/pablasso/siteplan/internal/submit"
)

// ErrPlanFailed is returned when the calculation could not be completed.
// AI failures are reported per region and do not fail the command.
var ErrPlanFailed = errors.New("calculation failed")

type planOptions struct {
	area        string
	floors      string
	timeline    string
	location    string
	fields      []string
	interactive bool

	prompter Prompter
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{prompter: surveyPrompter{}}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Estimate materials and generate an AI construction plan",
		Long: `Submit a project to the planning service and print the results.

The material and timeline estimate is printed first. The AI plan follows once
the service responds; if it fails, each AI section shows the error and the
command still succeeds.`,
		Example: `  siteplan plan --area 150 --floors 1
  siteplan plan --area 200 --floors 2 --timeline 180 --location Pune
  siteplan plan --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.area, "area", "", "Plot area in square yards")
	f.StringVar(&opts.floors, "floors", "", "Floors above ground (G+N)")
	f.StringVar(&opts.timeline, "timeline", "", "Target timeline in days (estimated when empty)")
	f.StringVar(&opts.location, "location", "", "Project location")
	f.StringArrayVar(&opts.fields, "field", nil, "Extra form field as name=value (repeatable)")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for missing fields")
	return cmd
}

func runPlan(cmd *cobra.Command, opts *planOptions) error {
	ctx, cancel := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	req, err := buildRequest(opts)
	if err != nil {
		return err
	}
	if opts.interactive {
		req, err = promptMissing(ctx, opts.prompter, req)
		if err != nil {
			return err
		}
	}
	if missing := missingFields(req); len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s (use --interactive to be prompted)", strings.Join(missing, ", "))
	}

	rt, err := loadRuntime(globals)
	if err != nil {
		return err
	}
	defer rt.close()

	client, err := api.New(rt.cfg.Server, api.WithTimeout(rt.cfg.Timeout), api.WithLogger(rt.log.Named("api")))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	d := display.New(out, isTerminal(out))
	orch := submit.New(client, d, submit.WithLogger(rt.log.Named("submit")))

	if err := orch.Submit(ctx, req); err != nil {
		return err
	}
	if d.Failed() {
		return ErrPlanFailed
	}
	return nil
}

// buildRequest assembles the form fields in form order, then the extra fields.
func buildRequest(opts *planOptions) (plan.Request, error) {
	req := plan.NewRequest(
		plan.Field{Name: plan.FieldArea, Value: strings.TrimSpace(opts.area)},
		plan.Field{Name: plan.FieldFloors, Value: strings.TrimSpace(opts.floors)},
		plan.Field{Name: plan.FieldTimeline, Value: strings.TrimSpace(opts.timeline)},
		plan.Field{Name: plan.FieldLocation, Value: strings.TrimSpace(opts.location)},
	)
	for _, raw := range opts.fields {
		f, err := plan.ParseField(raw)
		if err != nil {
			return plan.Request{}, err
		}
		req = req.With(f.Name, f.Value)
	}
	return req, nil
}

// missingFields returns the required fields that are empty.
func missingFields(req plan.Request) []string {
	var missing []string
	for _, name := range []string{plan.FieldArea, plan.FieldFloors} {
		if v, _ := req.Get(name); strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
