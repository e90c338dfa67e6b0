package main

import (
	"fmt"
	"os"

	"github.com/pablasso/siteplan/internal/cli"
	"github.com/pablasso/siteplan/internal/version"
)

func main() {
	args := os.Args[1:]

	// Without a subcommand, launch the TUI; otherwise route to the CLI.
	if !launchesTUI(args) {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	res, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	switch {
	case res.ShowHelp:
		fmt.Print(res.HelpText)
		return
	case res.ShowVersion:
		fmt.Printf("siteplan %s (commit %s, built %s)\n", version.Version, version.CommitSHA, version.BuildDate)
		return
	}

	if err := cli.RunTUI(res.Options); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
