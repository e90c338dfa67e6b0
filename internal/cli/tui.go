package cli

import "github.com/pablasso/siteplan/internal/tui"

// TUIOptions configures the interactive planner started by the entry point.
type TUIOptions struct {
	ConfigPath string
	Server     string
	LogFile    string
	Demo       *tui.DemoOptions
}

// RunTUI resolves config and logging, then runs the interactive planner.
// Logging never goes to stderr here since the TUI owns the terminal.
func RunTUI(opts TUIOptions) error {
	rt, err := loadRuntime(globalFlags{
		configPath: opts.ConfigPath,
		server:     opts.Server,
		logFile:    opts.LogFile,
	})
	if err != nil {
		return err
	}
	defer rt.close()

	return tui.Run(tui.Options{
		Server:  rt.cfg.Server,
		Timeout: rt.cfg.Timeout,
		Logger:  rt.log,
		Demo:    opts.Demo,
	})
}
