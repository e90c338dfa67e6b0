// Package cli implements the siteplan command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/siteplan/internal/version"
)

// globalFlags are the persistent flags every command reads.
type globalFlags struct {
	configPath string
	server     string
	logFile    string
	verbose    bool
}

var globals globalFlags

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "siteplan",
		Short: "Construction planning from the terminal",
		Long: `siteplan estimates the materials and timeline for a building project, then asks
the planning service for an AI-generated schedule, labor plan, cost breakdown
and blueprint suggestion.

Run without arguments to open the interactive planner.`,
		Version:      version.Version,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&globals.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/siteplan/config.yaml)")
	pf.StringVar(&globals.server, "server", "", "Planning service base URL")
	pf.StringVar(&globals.logFile, "log-file", "", "Write JSON logs to this file")
	pf.BoolVar(&globals.verbose, "verbose", false, "Log to stderr")

	cmd.AddCommand(newPlanCmd(), newServeCmd(), newDemoCmd(), newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
