package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pablasso/siteplan/internal/api"
	"github.com/pablasso/siteplan/internal/demo"
	"github.com/pablasso/siteplan/internal/submit"
	"github.com/pablasso/siteplan/internal/tui/styles"
	"github.com/pablasso/siteplan/internal/tui/views"
)

// Minimum terminal size the planner layout fits in.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 20
)

// Model is the main Bubble Tea model. It guards the planner view against
// terminals too small to lay it out.
type Model struct {
	planner views.PlannerModel
	width   int
	height  int
}

// Run starts the TUI application.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := opts.Backend
	var demoLabel string
	if backend == nil {
		server := opts.Server
		if opts.Demo != nil {
			running, err := demo.Start(demo.Config{
				Scenario: opts.Demo.Scenario,
				AIDelay:  opts.Demo.AIDelay,
				Log:      log.Named("demo"),
			})
			if err != nil {
				return err
			}
			defer func() { _ = running.Close() }()
			server = running.URL
			demoLabel = fmt.Sprintf("demo: %s", opts.Demo.Scenario)
		}

		client, err := api.New(server, api.WithTimeout(opts.Timeout), api.WithLogger(log.Named("api")))
		if err != nil {
			return err
		}
		backend = client
	}

	sender := &programSender{}
	orch := submit.New(backend, views.NewPlannerEvents(sender), submit.WithLogger(log.Named("submit")))

	p := tea.NewProgram(
		newModel(views.PlannerConfig{
			Submitter: orch,
			Context:   ctx,
			DemoLabel: demoLabel,
			Values:    opts.Values,
		}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	sender.program = p

	log.Info("tui started", zap.Bool("demo", opts.Demo != nil))
	_, err := p.Run()
	return err
}

// programSender forwards to the program once it exists. The orchestrator is
// built before the program, but only sends after a key press.
type programSender struct {
	program *tea.Program
}

func (s *programSender) Send(msg tea.Msg) {
	if s.program != nil {
		s.program.Send(msg)
	}
}

func newModel(cfg views.PlannerConfig) Model {
	return Model{planner: views.NewPlannerModel(cfg)}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.planner.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}
	var cmd tea.Cmd
	m.planner, cmd = m.planner.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && (m.width < MinTerminalWidth || m.height < MinTerminalHeight) {
		return m.renderTooSmall()
	}
	return m.planner.View()
}

func (m Model) renderTooSmall() string {
	var b strings.Builder
	b.WriteString(styles.ErrorStyle.Render("Terminal too small"))
	b.WriteString("\n\n")
	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight)))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("Current: %dx%d", m.width, m.height)))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
