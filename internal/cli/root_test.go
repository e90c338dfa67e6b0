package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pablasso/siteplan/internal/config"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"plan", "serve", "demo", "version"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Errorf("expected subcommand %q, got %v (err %v)", name, found, err)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := executeRoot(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "siteplan dev") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestServeCmd_InvalidArgs(t *testing.T) {
	isolateConfig(t)

	_, err := executeRoot(t, "serve", "--scenario", "flaky")
	if err == nil || !strings.Contains(err.Error(), "invalid demo scenario") {
		t.Errorf("expected invalid scenario error, got %v", err)
	}

	_, err = executeRoot(t, "serve", "--ai-delay=-1s")
	if err == nil || !strings.Contains(err.Error(), "must not be negative") {
		t.Errorf("expected negative delay error, got %v", err)
	}
}

func TestLoadRuntime_Precedence(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: http://file:8080\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	rt, err := loadRuntime(globalFlags{configPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt.close()
	if rt.cfg.Server != "http://file:8080" {
		t.Errorf("expected file server, got %q", rt.cfg.Server)
	}

	t.Setenv(config.EnvServer, "http://env:8080")
	rt, err = loadRuntime(globalFlags{configPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt.close()
	if rt.cfg.Server != "http://env:8080" {
		t.Errorf("expected env server, got %q", rt.cfg.Server)
	}

	logFile := filepath.Join(dir, "logs", "siteplan.log")
	rt, err = loadRuntime(globalFlags{configPath: path, server: "http://flag:8080", logFile: logFile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt.log.Info("hello")
	rt.close()
	if rt.cfg.Server != "http://flag:8080" {
		t.Errorf("expected flag server, got %q", rt.cfg.Server)
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("expected log file to be created: %v", err)
	}
}

func TestLoadRuntime_MissingExplicitConfig(t *testing.T) {
	isolateConfig(t)
	_, err := loadRuntime(globalFlags{configPath: filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	if isTerminal(&strings.Builder{}) {
		t.Error("expected a builder not to be a terminal")
	}
}
