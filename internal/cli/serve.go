package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pablasso/siteplan/internal/demo"
)

type serveOptions struct {
	addr     string
	scenario string
	aiDelay  time.Duration
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo planning service",
		Long: `Serve /api/calculate and /api/ai-plan with a built-in estimator and canned
AI analysis, for trying siteplan without the real service.

Scenarios:
  success    Both calls succeed (default)
  partial    The AI plan omits the blueprint
  ai-fail    The AI plan returns 503
  malformed  The AI plan has a non-numeric worker count
  calc-fail  The calculation returns an error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.addr, "addr", "127.0.0.1:8080", "Listen address")
	f.StringVar(&opts.scenario, "scenario", string(demo.ScenarioSuccess), "Demo scenario: success, partial, ai-fail, malformed, calc-fail")
	f.DurationVar(&opts.aiDelay, "ai-delay", 0, "Delay before each AI plan response")
	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	scenario, err := demo.ParseScenario(opts.scenario)
	if err != nil {
		return err
	}
	if opts.aiDelay < 0 {
		return fmt.Errorf("invalid --ai-delay %s: must not be negative", opts.aiDelay)
	}

	rt, err := loadRuntime(globals)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, cancel := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(cmd.OutOrStdout(), "Demo planning service on http://%s (scenario: %s)\n", opts.addr, scenario)
	rt.log.Info("serving demo", zap.String("addr", opts.addr), zap.String("scenario", string(scenario)))
	return demo.ListenAndServe(ctx, opts.addr, demo.Config{
		Scenario: scenario,
		AIDelay:  opts.aiDelay,
		Log:      rt.log.Named("demo"),
	})
}
