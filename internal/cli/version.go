package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/siteplan/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func versionString() string {
	return fmt.Sprintf("siteplan %s (commit %s, built %s)", version.Version, version.CommitSHA, version.BuildDate)
}
