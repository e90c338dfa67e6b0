// Package logging builds the zap logger used across siteplan.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where logs go.
type Options struct {
	// File receives JSON logs. Ignored when Verbose is set.
	File string
	// Level is the minimum level written.
	Level zapcore.Level
	// Verbose logs to stderr with a console encoder. Never use it while the
	// TUI owns the terminal.
	Verbose bool
}

// New returns a logger for opts and a function that flushes it. With neither
// File nor Verbose set, the logger discards everything.
func New(opts Options) (*zap.Logger, func(), error) {
	if opts.Verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(opts.Level)
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		log, err := cfg.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build logger: %w", err)
		}
		return log, func() { _ = log.Sync() }, nil
	}

	if opts.File == "" {
		return zap.NewNop(), func() {}, nil
	}

	if dir := filepath.Dir(opts.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(opts.Level)
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{opts.File}
	cfg.ErrorOutputPaths = []string{opts.File}
	log, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", opts.File, err)
	}
	return log, func() { _ = log.Sync() }, nil
}
