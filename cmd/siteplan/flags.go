package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pablasso/siteplan/internal/cli"
	"github.com/pablasso/siteplan/internal/demo"
	"github.com/pablasso/siteplan/internal/tui"
)

// subcommands are routed to the cobra CLI instead of the TUI.
var subcommands = map[string]bool{
	"plan":       true,
	"serve":      true,
	"demo":       true,
	"version":    true,
	"help":       true,
	"completion": true,
}

// launchesTUI reports whether args name no subcommand.
func launchesTUI(args []string) bool {
	for _, a := range args {
		if subcommands[a] {
			return false
		}
	}
	return true
}

type parseResult struct {
	Options     cli.TUIOptions
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("siteplan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	demoEnabled := fs.Bool("demo", false, "Run against the built-in demo service")
	demoScenario := fs.String("demo-scenario", string(demo.ScenarioSuccess), "Demo scenario: success|partial|ai-fail|malformed|calc-fail")
	demoDelay := fs.Duration("demo-ai-delay", tui.DefaultDemoAIDelay, "Demo delay before each AI plan response")
	server := fs.String("server", "", "Planning service base URL")
	configPath := fs.String("config", "", "Config file path")
	logFile := fs.String("log-file", "", "Write JSON logs to this file")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: siteplan [flags]")
		fmt.Fprintln(&b, "       siteplan <command> [flags]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "siteplan estimates construction materials and timelines and builds an AI plan.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Commands: plan, serve, demo, version (see 'siteplan help')")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("positional args are not supported\n\n%s", usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	var demoFlagProvided bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "demo-scenario", "demo-ai-delay":
			demoFlagProvided = true
		}
	})

	opts := cli.TUIOptions{
		ConfigPath: *configPath,
		Server:     *server,
		LogFile:    *logFile,
	}

	if !*demoEnabled {
		if demoFlagProvided {
			return parseResult{}, fmt.Errorf("--demo-scenario/--demo-ai-delay require --demo\n\n%s", usage())
		}
		return parseResult{Options: opts}, nil
	}

	if *server != "" {
		return parseResult{}, fmt.Errorf("--server cannot be combined with --demo\n\n%s", usage())
	}

	scenario, err := demo.ParseScenario(*demoScenario)
	if err != nil {
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}
	if *demoDelay < 0 {
		return parseResult{}, fmt.Errorf("--demo-ai-delay must not be negative\n\n%s", usage())
	}

	opts.Demo = &tui.DemoOptions{Scenario: scenario, AIDelay: *demoDelay}
	return parseResult{Options: opts}, nil
}
