package main

import (
	"strings"
	"testing"
	"time"

	"github.com/pablasso/siteplan/internal/demo"
	"github.com/pablasso/siteplan/internal/tui"
)

func TestLaunchesTUI(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{nil, true},
		{[]string{"--demo"}, true},
		{[]string{"--server", "http://localhost:9000"}, true},
		{[]string{"plan", "--area", "150"}, false},
		{[]string{"--verbose", "plan"}, false},
		{[]string{"serve"}, false},
		{[]string{"version"}, false},
		{[]string{"help"}, false},
	}
	for _, tt := range tests {
		if got := launchesTUI(tt.args); got != tt.want {
			t.Errorf("launchesTUI(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestParseArgs_NoArgs(t *testing.T) {
	res, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.ShowHelp {
		t.Fatalf("expected ShowHelp=false")
	}
	if res.ShowVersion {
		t.Fatalf("expected ShowVersion=false")
	}
	if res.Options.Demo != nil {
		t.Fatalf("expected demo disabled")
	}
}

func TestParseArgs_ServerAndConfig(t *testing.T) {
	res, err := parseArgs([]string{"--server", "http://planner:8080", "--config=/tmp/siteplan.yaml", "--log-file", "/tmp/siteplan.log"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Options.Server != "http://planner:8080" {
		t.Fatalf("unexpected server %q", res.Options.Server)
	}
	if res.Options.ConfigPath != "/tmp/siteplan.yaml" {
		t.Fatalf("unexpected config path %q", res.Options.ConfigPath)
	}
	if res.Options.LogFile != "/tmp/siteplan.log" {
		t.Fatalf("unexpected log file %q", res.Options.LogFile)
	}
}

func TestParseArgs_DemoDefaults(t *testing.T) {
	res, err := parseArgs([]string{"--demo"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Options.Demo == nil {
		t.Fatalf("expected demo enabled")
	}
	if res.Options.Demo.Scenario != demo.ScenarioSuccess {
		t.Fatalf("expected scenario %q, got %q", demo.ScenarioSuccess, res.Options.Demo.Scenario)
	}
	if res.Options.Demo.AIDelay != tui.DefaultDemoAIDelay {
		t.Fatalf("expected default AI delay, got %s", res.Options.Demo.AIDelay)
	}
}

func TestParseArgs_DemoWithScenarioAndDelay(t *testing.T) {
	res, err := parseArgs([]string{"--demo", "--demo-scenario=ai-fail", "--demo-ai-delay=3s"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Options.Demo.Scenario != demo.ScenarioAIFail {
		t.Fatalf("expected scenario %q, got %q", demo.ScenarioAIFail, res.Options.Demo.Scenario)
	}
	if res.Options.Demo.AIDelay != 3*time.Second {
		t.Fatalf("expected 3s delay, got %s", res.Options.Demo.AIDelay)
	}
}

func TestParseArgs_DemoFlagsWithoutDemoErrors(t *testing.T) {
	_, err := parseArgs([]string{"--demo-scenario=partial"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "require --demo") {
		t.Fatalf("expected error to mention require --demo, got: %s", err.Error())
	}
}

func TestParseArgs_DemoWithServerErrors(t *testing.T) {
	_, err := parseArgs([]string{"--demo", "--server", "http://x"})
	if err == nil || !strings.Contains(err.Error(), "cannot be combined") {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestParseArgs_InvalidScenarioErrors(t *testing.T) {
	_, err := parseArgs([]string{"--demo", "--demo-scenario=flaky"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid demo scenario") {
		t.Fatalf("expected invalid scenario error, got: %s", err.Error())
	}
}

func TestParseArgs_PositionalArgsError(t *testing.T) {
	_, err := parseArgs([]string{"foo"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "positional args are not supported") {
		t.Fatalf("expected positional args error, got: %s", err.Error())
	}
}

func TestParseArgs_VersionLong(t *testing.T) {
	res, err := parseArgs([]string{"--version"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowVersion {
		t.Fatalf("expected ShowVersion=true")
	}
}

func TestParseArgs_VersionShort(t *testing.T) {
	res, err := parseArgs([]string{"-v"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowVersion {
		t.Fatalf("expected ShowVersion=true")
	}
}

func TestParseArgs_Help(t *testing.T) {
	res, err := parseArgs([]string{"--help"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowHelp {
		t.Fatalf("expected ShowHelp=true")
	}
	for _, want := range []string{"siteplan estimates construction materials", "-demo", "-server", "-version"} {
		if !strings.Contains(res.HelpText, want) {
			t.Fatalf("expected help text to include %q, got: %s", want, res.HelpText)
		}
	}
}
