package cli

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pablasso/siteplan/internal/config"
	"github.com/pablasso/siteplan/internal/logging"
)

// runtime is the resolved configuration and logger for one command.
type runtime struct {
	cfg   config.Config
	log   *zap.Logger
	close func()
}

// loadRuntime resolves config from file, environment and flags, in that order
// of increasing precedence, and opens the logger.
func loadRuntime(f globalFlags) (*runtime, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.server != "" {
		if err := config.ValidateServer(f.server); err != nil {
			return nil, err
		}
		cfg.Server = f.server
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log, closeLog, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Level:   level,
		Verbose: f.verbose,
	})
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, log: log, close: closeLog}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
