package views

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/siteplan/internal/plan"
	"github.com/pablasso/siteplan/internal/render"
	"github.com/pablasso/siteplan/internal/submit"
	"github.com/pablasso/siteplan/internal/tui/components"
	"github.com/pablasso/siteplan/internal/tui/msgs"
	"github.com/pablasso/siteplan/internal/tui/styles"
)

// Submitter runs a submission. It blocks until the submission reaches a
// terminal state; progress arrives as msgs through the Presenter.
type Submitter interface {
	Submit(ctx context.Context, req plan.Request) error
}

// formField is one input of the project form.
type formField struct {
	name  string
	label string
	input textinput.Model
}

// focus targets: form fields come first, then the results tabs.
const resultsFocus = -1

// PlannerModel is the project form and results screen.
type PlannerModel struct {
	fields []formField
	focus  int

	submitter Submitter
	ctx       context.Context

	triggerEnabled bool
	busy           bool
	spinner        spinner.Model

	revealed bool
	regions  map[render.Region]components.RegionState
	tabs     components.Tabs
	tabView  components.ScrollViewport

	modal  string
	notice string

	demoLabel string

	width  int
	height int
}

// PlannerConfig holds initialization parameters.
type PlannerConfig struct {
	Submitter Submitter
	Context   context.Context
	// DemoLabel is shown in the header when running against the demo service.
	DemoLabel string
	// Values pre-fills form fields by name.
	Values map[string]string
}

// NewPlannerModel creates the planner view.
func NewPlannerModel(cfg PlannerConfig) PlannerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := PlannerModel{
		fields: []formField{
			newFormField(plan.FieldArea, "Plot Area (sq.yd)", "e.g. 150", 10),
			newFormField(plan.FieldFloors, "Floors (G+)", "e.g. 1", 3),
			newFormField(plan.FieldTimeline, "Timeline (days)", "optional", 5),
			newFormField(plan.FieldLocation, "Location", "optional", 60),
		},
		submitter:      cfg.Submitter,
		ctx:            ctx,
		triggerEnabled: true,
		spinner:        s,
		regions:        make(map[render.Region]components.RegionState),
		tabs:           components.Tabs{Labels: tabLabels()},
		tabView:        components.NewScrollViewport(60, 8),
		demoLabel:      cfg.DemoLabel,
	}
	for i := range m.fields {
		if v, ok := cfg.Values[m.fields[i].name]; ok {
			m.fields[i].input.SetValue(v)
		}
	}
	m.setFocus(0)
	return m
}

func newFormField(name, label, placeholder string, limit int) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30
	ti.Prompt = ""
	return formField{name: name, label: label, input: ti}
}

func tabLabels() []string {
	labels := make([]string, len(render.TabRegions))
	for i, r := range render.TabRegions {
		labels[i] = r.String()
	}
	return labels
}

// Request collects the form values in field order.
func (m PlannerModel) Request() plan.Request {
	fields := make([]plan.Field, len(m.fields))
	for i, f := range m.fields {
		fields[i] = plan.Field{Name: f.name, Value: strings.TrimSpace(f.input.Value())}
	}
	return plan.NewRequest(fields...)
}

// TriggerEnabled reports whether the submit trigger accepts input.
func (m PlannerModel) TriggerEnabled() bool { return m.triggerEnabled }

// Busy reports whether the calculation busy indicator is showing.
func (m PlannerModel) Busy() bool { return m.busy }

// Revealed reports whether the results section is visible.
func (m PlannerModel) Revealed() bool { return m.revealed }

// Modal returns the blocking error message, if any.
func (m PlannerModel) Modal() string { return m.modal }

// Region returns the current state of a results region.
func (m PlannerModel) Region(r render.Region) components.RegionState { return m.regions[r] }

// ActiveTab returns the selected tab region.
func (m PlannerModel) ActiveTab() render.Region { return render.TabRegions[m.tabs.Active] }

// Init implements tea.Model.
func (m PlannerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PlannerModel) Update(msg tea.Msg) (PlannerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTabView()
		return m, nil

	case spinner.TickMsg:
		if m.spinning() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refreshTabView(false)
			return m, cmd
		}
		return m, nil

	case msgs.TriggerMsg:
		m.triggerEnabled = msg.Enabled
		return m, nil

	case msgs.BusyMsg:
		wasSpinning := m.spinning()
		m.busy = msg.Busy
		if msg.Busy {
			m.notice = ""
		}
		return m, m.startSpinner(wasSpinning)

	case msgs.RevealResultsMsg:
		m.revealed = true
		return m, nil

	case msgs.RegionLoadingMsg:
		wasSpinning := m.spinning()
		m.regions[msg.Region] = components.RegionState{Status: components.RegionLoading}
		m.refreshTabView(msg.Region == m.ActiveTab())
		return m, m.startSpinner(wasSpinning)

	case msgs.RegionErrorMsg:
		m.regions[msg.Region] = components.RegionState{Status: components.RegionFailed, Message: msg.Message}
		m.refreshTabView(msg.Region == m.ActiveTab())
		return m, nil

	case msgs.RegionRenderedMsg:
		m.regions[msg.Region] = components.RegionState{Status: components.RegionReady, Content: msg.Content}
		m.refreshTabView(msg.Region == m.ActiveTab())
		return m, nil

	case msgs.NotifyErrorMsg:
		m.modal = msg.Message
		return m, nil

	case msgs.SubmitRejectedMsg:
		m.notice = "A calculation is already running."
		return m, nil

	case msgs.SubmitDoneMsg:
		if msg.Err != nil {
			m.modal = msg.Err.Error()
			m.triggerEnabled = true
		}
		return m, nil

	case tea.MouseMsg:
		if !m.revealed || m.modal != "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.tabView, cmd = m.tabView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus >= 0 {
		var cmd tea.Cmd
		m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PlannerModel) handleKey(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	// The error dialog blocks everything until dismissed.
	if m.modal != "" {
		switch msg.String() {
		case "enter", "esc", " ":
			m.modal = ""
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		return m.submit()
	case "tab":
		m.setFocus(m.nextFocus(1))
		return m, nil
	case "shift+tab":
		m.setFocus(m.nextFocus(-1))
		return m, nil
	}

	if m.focus == resultsFocus {
		switch msg.String() {
		case "right", "l":
			m.tabs.Active = m.tabs.Next()
			m.refreshTabView(true)
		case "left", "h":
			m.tabs.Active = m.tabs.Prev()
			m.refreshTabView(true)
		case "1", "2", "3", "4":
			if i := int(msg.String()[0] - '1'); i < len(render.TabRegions) {
				m.tabs.Active = i
				m.refreshTabView(true)
			}
		default:
			var cmd tea.Cmd
			m.tabView, cmd = m.tabView.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "down":
		m.setFocus(m.nextFocus(1))
		return m, nil
	case "up":
		m.setFocus(m.nextFocus(-1))
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

// submit fires the trigger. A disabled trigger ignores the press.
func (m PlannerModel) submit() (PlannerModel, tea.Cmd) {
	if !m.triggerEnabled || m.submitter == nil {
		return m, nil
	}
	// Disable locally right away so a second press before the presenter's
	// update arrives does not queue another submission.
	m.triggerEnabled = false
	req := m.Request()
	submitter := m.submitter
	ctx := m.ctx
	return m, func() tea.Msg {
		if err := submitter.Submit(ctx, req); err != nil {
			if errors.Is(err, submit.ErrSubmissionInFlight) {
				return msgs.SubmitRejectedMsg{}
			}
			return msgs.SubmitDoneMsg{Err: err}
		}
		return msgs.SubmitDoneMsg{}
	}
}

// nextFocus cycles through the form fields and, once results are visible,
// the results tabs.
func (m PlannerModel) nextFocus(delta int) int {
	targets := make([]int, 0, len(m.fields)+1)
	for i := range m.fields {
		targets = append(targets, i)
	}
	if m.revealed {
		targets = append(targets, resultsFocus)
	}
	cur := 0
	for i, t := range targets {
		if t == m.focus {
			cur = i
			break
		}
	}
	return targets[(cur+delta+len(targets))%len(targets)]
}

func (m *PlannerModel) setFocus(focus int) {
	m.focus = focus
	for i := range m.fields {
		if i == focus {
			m.fields[i].input.Focus()
		} else {
			m.fields[i].input.Blur()
		}
	}
}

// spinning reports whether anything on screen is waiting.
func (m PlannerModel) spinning() bool {
	if m.busy {
		return true
	}
	for _, st := range m.regions {
		if st.Status == components.RegionLoading {
			return true
		}
	}
	return false
}

func (m PlannerModel) startSpinner(wasSpinning bool) tea.Cmd {
	if !wasSpinning && m.spinning() {
		return m.spinner.Tick
	}
	return nil
}

func (m *PlannerModel) resizeTabView() {
	w := m.contentWidth() - styles.BoxStyle.GetHorizontalFrameSize()
	h := m.height - 24
	if h < 4 {
		h = 4
	}
	m.tabView.SetSize(w, h)
	m.refreshTabView(false)
}

func (m *PlannerModel) refreshTabView(reset bool) {
	region := m.ActiveTab()
	m.tabView.SetLines(components.RegionLines(region, m.regions[region], m.spinner.View()), reset)
}

func (m PlannerModel) contentWidth() int {
	w := m.width - 4
	if w > 100 {
		w = 100
	}
	if w < 40 {
		w = 40
	}
	return w
}

// View implements tea.Model.
func (m PlannerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.modal != "" {
		return m.renderModal()
	}

	var sections []string
	sections = append(sections, m.renderHeader(), m.renderForm())
	if m.revealed {
		sections = append(sections, m.renderResults())
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	body = lipgloss.NewStyle().Padding(1, 2).Render(body)

	statusBar := components.NewStatusBar().Render(m.width, m.helpItems(), m.stateLabel())

	bodyHeight := lipgloss.Height(body)
	if gap := m.height - bodyHeight - 1; gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + statusBar
}

func (m PlannerModel) renderHeader() string {
	title := styles.TitleStyle.Render("Construction Planner")
	if m.demoLabel != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", styles.SubtleStyle.Render(m.demoLabel))
	}
	return title
}

func (m PlannerModel) renderForm() string {
	var lines []string
	for i, f := range m.fields {
		label := styles.LabelStyle.Render(f.label)
		if i == m.focus {
			label = styles.SelectedStyle.Width(18).Render(f.label)
		}
		lines = append(lines, label+f.input.View())
	}
	lines = append(lines, "")

	button := styles.ButtonStyle.Render("Generate Plan")
	if !m.triggerEnabled {
		button = styles.DisabledButtonStyle.Render("Generate Plan")
	}
	status := ""
	switch {
	case m.busy:
		status = m.spinner.View() + " " + styles.SubtleStyle.Render("Calculating...")
	case m.notice != "":
		status = styles.ErrorStyle.Render(m.notice)
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, button, "  ", status))

	return components.Panel("Project Details", lines, m.contentWidth())
}

func (m PlannerModel) renderResults() string {
	width := m.contentWidth()
	spin := m.spinner.View()

	summary := components.RegionLines(render.RegionSummary, m.regions[render.RegionSummary], spin)
	workforce := components.RegionLines(render.RegionWorkforce, m.regions[render.RegionWorkforce], spin)
	if len(workforce) > 0 {
		summary = append(summary, lipgloss.JoinHorizontal(lipgloss.Top,
			styles.LabelStyle.Render("Workforce"), workforce[0]))
		for _, l := range workforce[1:] {
			summary = append(summary, styles.LabelStyle.Render("")+l)
		}
	}

	half := width / 2
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Panel("Project Summary", summary, half),
		components.Panel("Materials", components.RegionLines(render.RegionMaterials, m.regions[render.RegionMaterials], spin), width-half),
	)

	tabTitle := m.tabs.View()
	if m.focus == resultsFocus {
		tabTitle = styles.SelectedStyle.Render("▸ ") + tabTitle
	}
	tabs := components.Panel("", []string{tabTitle, m.tabView.View()}, width)

	return lipgloss.JoinVertical(lipgloss.Left, top, tabs)
}

func (m PlannerModel) renderModal() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.ErrorStyle.Bold(true).Render("Error"),
		"",
		lipgloss.NewStyle().Width(min(60, m.width-10)).Render(m.modal),
		"",
		styles.SubtleStyle.Render("Press Enter to dismiss"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, styles.ModalStyle.Render(content))
}

func (m PlannerModel) helpItems() []string {
	items := []string{"Tab Next", "Enter Generate"}
	if m.focus == resultsFocus {
		items = append(items, "←→ Switch tab", "↑↓ Scroll")
	}
	return append(items, "Esc Quit")
}

func (m PlannerModel) stateLabel() string {
	switch {
	case m.busy:
		return "Calculating"
	case m.Region(render.RegionSchedule).Status == components.RegionLoading:
		return "AI analyzing"
	default:
		return ""
	}
}
