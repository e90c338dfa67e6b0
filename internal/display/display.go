// Package display is a plain-text Presenter for non-interactive runs. It
// prints each region as it arrives and keeps a status line while calls are in
// flight.
package display

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pablasso/siteplan/internal/render"
)

// Status represents what the status line is waiting for.
type Status int

const (
	StatusIdle Status = iota
	StatusCalculating
	StatusAnalyzing
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusCalculating:
		return "Calculating..."
	case StatusAnalyzing:
		return "AI is analyzing project details..."
	default:
		return "Unknown"
	}
}

// Display writes results to a terminal or pipe.
type Display struct {
	mu       sync.Mutex
	writer   io.Writer
	status   Status
	start    time.Time
	ticker   *time.Ticker
	done     chan struct{}
	wg       sync.WaitGroup // Ensures goroutine exits before stop() returns
	active   bool
	lastLine string

	// live enables the animated status line; off for pipes and tests.
	live bool

	pending  map[render.Region]bool
	failures int
	notified []string
}

// New creates a Display writing to w. With live set, a status line is redrawn
// every second while a call is in flight.
func New(w io.Writer, live bool) *Display {
	return &Display{
		writer:  w,
		live:    live,
		pending: make(map[render.Region]bool),
	}
}

// Failed reports whether a blocking error was shown.
func (d *Display) Failed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.notified) > 0
}

// RegionFailures returns how many regions ended in an error state.
func (d *Display) RegionFailures() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.failures
}

func (d *Display) DisableTrigger() {}
func (d *Display) EnableTrigger()  {}

func (d *Display) ShowBusy() {
	d.begin(StatusCalculating)
}

func (d *Display) HideBusy() {
	d.stop()
}

func (d *Display) RevealResults() {
	d.PrintAbove("Results")
	d.PrintAbove("%s", strings.Repeat("=", 40))
}

func (d *Display) SetRegionLoading(region render.Region) {
	d.mu.Lock()
	d.pending[region] = true
	d.mu.Unlock()
	d.begin(StatusAnalyzing)
}

func (d *Display) SetRegionError(region render.Region, message string) {
	d.mu.Lock()
	d.failures++
	d.mu.Unlock()
	text := fmt.Sprintf("%s\n  %s\n", title(region), render.ErrorText(region, message))
	if region == render.RegionWorkforce && message != "" {
		text += fmt.Sprintf("      %s\n", message)
	}
	d.PrintAbove("%s", text)
	d.resolve(region)
}

func (d *Display) RenderRegion(region render.Region, content render.Content) {
	d.PrintAbove("%s", FormatContent(region, content))
	d.resolve(region)
}

func (d *Display) NotifyError(message string) {
	d.mu.Lock()
	d.notified = append(d.notified, message)
	d.mu.Unlock()
	d.PrintAbove("Error: %s", message)
}

// resolve stops the status line once every loading region has an outcome.
func (d *Display) resolve(region render.Region) {
	d.mu.Lock()
	delete(d.pending, region)
	remaining := len(d.pending)
	d.mu.Unlock()
	if remaining == 0 {
		d.stop()
	}
}

// FormatContent renders region content as indented plain text.
func FormatContent(region render.Region, c render.Content) string {
	var b strings.Builder
	b.WriteString(title(region))
	if c.Heading != "" && c.Heading != title(region) {
		b.WriteString(" - ")
		b.WriteString(c.Heading)
	}
	b.WriteString("\n")

	if c.Unavailable {
		text := c.Note
		if text == "" {
			text = c.Value
		}
		fmt.Fprintf(&b, "  %s\n", text)
		return b.String()
	}
	if c.Value != "" {
		fmt.Fprintf(&b, "  %s\n", c.Value)
	}

	width := 0
	for _, l := range c.Lines {
		if len(l.Label) > width {
			width = len(l.Label)
		}
	}
	for _, l := range c.Lines {
		switch {
		case l.Label != "" && l.Value != "":
			fmt.Fprintf(&b, "  %-*s  %s\n", width, l.Label, l.Value)
		case l.Label != "":
			fmt.Fprintf(&b, "  %s\n", l.Label)
		case l.Value != "":
			fmt.Fprintf(&b, "  %s\n", l.Value)
		}
		if l.Detail != "" {
			fmt.Fprintf(&b, "      %s\n", l.Detail)
		}
	}
	return b.String()
}

func title(region render.Region) string {
	switch region {
	case render.RegionSummary:
		return "Project Summary"
	case render.RegionMaterials:
		return "Materials"
	case render.RegionWorkforce:
		return "Workforce"
	case render.RegionSchedule:
		return "Construction Schedule"
	case render.RegionLabor:
		return "Labor Requirements"
	case render.RegionCost:
		return "Cost Breakdown"
	case render.RegionBlueprint:
		return "Blueprint"
	default:
		return region.String()
	}
}

// begin starts or updates the status line.
func (d *Display) begin(status Status) {
	d.mu.Lock()
	d.status = status
	if d.active || !d.live {
		d.mu.Unlock()
		return
	}
	d.active = true
	d.start = time.Now()
	d.lastLine = ""
	d.ticker = time.NewTicker(time.Second)
	d.done = make(chan struct{})
	d.wg.Add(1)
	d.mu.Unlock()

	go d.updateLoop()
}

// stop halts the status line loop and clears the line.
// Blocks until the update goroutine has exited to prevent race conditions.
func (d *Display) stop() {
	d.mu.Lock()
	d.status = StatusIdle
	if !d.active {
		d.mu.Unlock()
		return
	}
	d.active = false
	d.mu.Unlock()

	d.ticker.Stop()
	close(d.done)
	d.wg.Wait()
	d.clearLine()
}

func (d *Display) updateLoop() {
	defer d.wg.Done()
	d.renderStatus()
	for {
		select {
		case <-d.ticker.C:
			d.renderStatus()
		case <-d.done:
			return
		}
	}
}

func (d *Display) renderStatus() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return
	}

	line := formatStatus(d.status, time.Since(d.start))
	// Only update if changed (reduces flicker)
	if line == d.lastLine {
		return
	}
	d.lastLine = line
	fmt.Fprintf(d.writer, "\r\033[K%s", line)
}

func formatStatus(status Status, elapsed time.Duration) string {
	if status == StatusIdle {
		return ""
	}
	return fmt.Sprintf("%s │ ⏱ %s", status, formatDuration(elapsed))
}

func (d *Display) clearLine() {
	if d.live {
		fmt.Fprintf(d.writer, "\r\033[K")
	}
}

// PrintAbove prints a message above the status line.
func (d *Display) PrintAbove(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.live {
		fmt.Fprintf(d.writer, "\r\033[K")
	}
	fmt.Fprintf(d.writer, format+"\n", args...)
	if d.active {
		d.lastLine = formatStatus(d.status, time.Since(d.start))
		fmt.Fprintf(d.writer, "%s", d.lastLine)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
