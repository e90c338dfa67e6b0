package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pablasso/siteplan/internal/demo"
	"github.com/pablasso/siteplan/internal/tui"
)

func newDemoCmd() *cobra.Command {
	var (
		scenario string
		aiDelay  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the planner against the built-in demo service",
		Long: `Launch the interactive planner with the demo service running on a loopback
port. No planning service is needed. Useful for:
  - Trying siteplan out
  - Iterating on the TUI quickly
  - Seeing each failure state

See 'siteplan serve --help' for the scenarios.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := demo.ParseScenario(scenario)
			if err != nil {
				return err
			}
			return RunTUI(TUIOptions{
				ConfigPath: globals.configPath,
				LogFile:    globals.logFile,
				Demo:       &tui.DemoOptions{Scenario: s, AIDelay: aiDelay},
			})
		},
	}
	cmd.Flags().StringVar(&scenario, "scenario", string(demo.ScenarioSuccess), "Demo scenario: success, partial, ai-fail, malformed, calc-fail")
	cmd.Flags().DurationVar(&aiDelay, "ai-delay", tui.DefaultDemoAIDelay, "Delay before each AI plan response")
	return cmd
}
