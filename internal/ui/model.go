package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/services"
	"github.com/Vinyaaggarwal/Perry/internal/theme"
)

type uiState int

const (
	stateForm uiState = iota
	stateStarting
	stateRunning
	stateFinished
)

const (
	// maxCatchUpTicks bounds the phases advanced by one tick message
	maxCatchUpTicks  = 64
	maxProgressWidth = 60
)

// Options configures the focus screen
type Options struct {
	AutoStart    *domain.FocusPlan // Skip the form and start this plan
	DevMode      bool
	FormDefaults SessionFormDefaults
	TickInterval time.Duration
}

// Model is the focus timer screen. It drives FocusController.Tick from a
// tea.Tick loop while a session runs.
type Model struct {
	controller   *services.FocusController
	devMode      bool
	err          error
	final        *domain.FocusSession
	form         *SessionForm
	formDefaults SessionFormDefaults
	help         help.Model
	keys         KeyMap
	now          func() time.Time
	pendingPlan  *domain.FocusPlan
	progress     progress.Model
	quitting     bool // Quit pressed while Start was in flight
	session      *domain.FocusSession
	showSites    bool
	state        uiState
	tickInterval time.Duration
	warning      string
	width        int
}

// NewModel creates the focus screen
func NewModel(controller *services.FocusController, opts Options) *Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second
	}

	m := &Model{
		controller:   controller,
		devMode:      opts.DevMode,
		formDefaults: opts.FormDefaults,
		help:         help.New(),
		keys:         NewKeyMap(),
		now:          time.Now,
		pendingPlan:  opts.AutoStart,
		progress: progress.New(
			progress.WithGradient(theme.ColorProgressStart, theme.ColorProgressEnd),
			progress.WithWidth(maxProgressWidth),
		),
		tickInterval: tickInterval,
	}

	if m.pendingPlan != nil {
		m.state = stateStarting
	} else {
		m.state = stateForm
		m.form = NewSessionForm(m.formDefaults)
	}
	m.keys.setActive(false)

	return m
}

// FinalSession returns the last session that ended on this screen, or nil
func (m *Model) FinalSession() *domain.FocusSession {
	return m.final
}

func (m *Model) Init() tea.Cmd {
	if m.pendingPlan != nil {
		plan := *m.pendingPlan
		m.pendingPlan = nil
		return m.startSession(plan)
	}
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-4, 10), maxProgressWidth)
	case sessionStartedMsg:
		return m.handleStarted(msg)
	case sessionCancelledMsg:
		return m.handleCancelled(msg)
	case tickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.state == stateForm {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.ToggleSites):
		m.showSites = !m.showSites
	case key.Matches(keyMsg, m.keys.Cancel) && m.state == stateRunning:
		return m, m.cancelSession()
	case key.Matches(keyMsg, m.keys.NewSession) && m.state == stateFinished:
		m.err = nil
		m.warning = ""
		m.form = NewSessionForm(m.formDefaults)
		m.state = stateForm
		return m, m.form.Init()
	}

	return m, nil
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.form.Update(msg)
	if !m.form.Completed {
		return m, cmd
	}

	if m.form.Cancelled() {
		logging.Logger.Debug("Session form cancelled")
		if m.final != nil {
			m.state = stateFinished
			return m, nil
		}
		return m, tea.Quit
	}

	plan, err := m.form.Plan()
	if err != nil {
		m.err = err
		m.form = NewSessionForm(m.formDefaults)
		return m, m.form.Init()
	}

	m.state = stateStarting
	return m, m.startSession(plan)
}

func (m *Model) handleStarted(msg sessionStartedMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		if msg.err == nil {
			m.session = msg.result.Session
			m.state = stateRunning
			m.releaseSession()
		}
		return m, tea.Quit
	}
	if msg.err != nil {
		logging.Logger.Error("Failed to start focus session", "error", msg.err)
		m.err = msg.err
		m.form = NewSessionForm(m.formDefaults)
		m.state = stateForm
		return m, m.form.Init()
	}

	m.err = nil
	m.warning = ""
	if msg.result.BlockingErr != nil {
		m.warning = msg.result.BlockingErr.Error()
	}
	m.session = msg.result.Session
	m.state = stateRunning
	m.keys.setActive(true)
	return m, m.tick()
}

func (m *Model) handleCancelled(msg sessionCancelledMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, domain.ErrNoActiveSession) {
		// Completed between the key press and the cancel
		return m, nil
	}
	if msg.err != nil {
		m.warning = msg.err.Error()
	}
	m.finish(msg.session)
	return m, nil
}

func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.state != stateRunning {
		return m, nil
	}

	for range maxCatchUpTicks {
		transition, err := m.controller.Tick(now)
		if err != nil {
			logging.Logger.Warn("Failed to record phase change", "error", err)
			m.err = err
		}
		if transition == nil {
			break
		}
		if transition.BlockingErr != nil {
			m.warning = transition.BlockingErr.Error()
		}
		if transition.To.IsTerminal() {
			final := m.session.Clone()
			final.Cycle = transition.Cycle
			final.Phase = transition.To
			final.EndedAt = transition.At
			final.BlockingActive = false
			m.finish(final)
			return m, nil
		}
	}

	current := m.controller.Current()
	if current == nil {
		m.finish(m.session)
		return m, nil
	}
	m.session = current
	return m, m.tick()
}

func (m *Model) finish(session *domain.FocusSession) {
	m.final = session
	m.session = nil
	m.state = stateFinished
	m.keys.setActive(false)
}

// quit cancels a running session before exiting so no sites stay blocked.
// While Start is in flight the exit waits for sessionStartedMsg.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateStarting:
		m.quitting = true
		return m, nil
	case stateRunning:
		m.releaseSession()
	}
	return m, tea.Quit
}

// releaseSession cancels the running session synchronously
func (m *Model) releaseSession() {
	session, err := m.controller.Cancel(context.Background())
	if err != nil && !errors.Is(err, domain.ErrNoActiveSession) {
		logging.Logger.Error("Failed to release blocking on quit", "error", err)
		m.warning = err.Error()
	}
	if session != nil {
		m.finish(session)
	}
}

func (m *Model) startSession(plan domain.FocusPlan) tea.Cmd {
	return func() tea.Msg {
		result, err := m.controller.Start(context.Background(), plan)
		return sessionStartedMsg{err: err, result: result}
	}
}

func (m *Model) cancelSession() tea.Cmd {
	return func() tea.Msg {
		session, err := m.controller.Cancel(context.Background())
		return sessionCancelledMsg{err: err, session: session}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) View() string {
	var b strings.Builder

	switch m.state {
	case stateForm:
		b.WriteString(renderHeader(m.devMode, "New focus session"))
		b.WriteString("\n")
		b.WriteString(m.form.View())
	case stateStarting:
		b.WriteString(renderHeader(m.devMode, ""))
		b.WriteString("\n")
		b.WriteString(theme.LabelStyle.Render("Starting focus session..."))
	case stateRunning:
		b.WriteString(renderHeader(m.devMode, ""))
		b.WriteString(m.renderRunning())
	case stateFinished:
		b.WriteString(renderHeader(m.devMode, ""))
		b.WriteString(m.renderFinished())
	}

	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(theme.WarningStyle.Render("⚠ " + m.warning))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(formatErrorForDisplay(m.err, m.width))
	}
	if m.state != stateForm {
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	}

	return b.String()
}

func (m *Model) renderRunning() string {
	s := m.session
	now := m.now()

	var b strings.Builder
	b.WriteString(theme.PhaseStyle(s.Phase).Render(fmt.Sprintf("%s %s", s.Phase.Symbol(), s.Phase.Label())))
	b.WriteString(theme.LabelStyle.Render(fmt.Sprintf("  cycle %d of %d", s.Cycle, s.Cycles)))
	b.WriteString("\n")
	b.WriteString(theme.TimerStyle.Render(formatClock(s.Remaining(now))))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(s.PhaseProgress(now)))
	b.WriteString("\n\n")
	b.WriteString(theme.NormalStyle.Render(blockingStatus(s)))
	if s.Notes != "" {
		b.WriteString("\n")
		b.WriteString(theme.LabelStyle.Render("Notes: " + s.Notes))
	}
	if m.showSites {
		b.WriteString("\n")
		b.WriteString(renderSites(s.Domains))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderFinished() string {
	s := m.final
	if s == nil {
		return theme.LabelStyle.Render("No focus session") + "\n"
	}

	var b strings.Builder
	b.WriteString(theme.PhaseStyle(s.Phase).Render(fmt.Sprintf("%s %s", s.Phase.Symbol(), s.Phase.Label())))
	b.WriteString("\n\n")
	b.WriteString(theme.NormalStyle.Render(fmt.Sprintf("Focused for %s, cycle %d of %d",
		formatClock(s.Elapsed(m.now())), s.Cycle, s.Cycles)))
	if len(s.Domains) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.LabelStyle.Render(fmt.Sprintf("%d sites unblocked", len(s.Domains))))
	}
	if m.showSites {
		b.WriteString("\n")
		b.WriteString(renderSites(s.Domains))
	}
	b.WriteString("\n")
	return b.String()
}

func blockingStatus(s *domain.FocusSession) string {
	switch {
	case len(s.Domains) == 0:
		return "Timer only, no sites blocked"
	case s.BlockingInert:
		return theme.WarningStyle.Render("Blocking inactive: run Perry with administrator rights to block sites")
	case s.BlockingActive:
		return fmt.Sprintf("%d sites blocked", len(s.Domains))
	case s.Phase == domain.PhaseOnBreak:
		return "Sites unblocked for the break"
	default:
		return theme.WarningStyle.Render("Sites are not blocked")
	}
}

func renderSites(domains []string) string {
	if len(domains) == 0 {
		return theme.SitesBoxStyle.Render(theme.LabelStyle.Render("No sites"))
	}
	lines := make([]string, len(domains))
	for i, d := range domains {
		lines[i] = theme.SiteStyle.Render(d)
	}
	return theme.SitesBoxStyle.Render(strings.Join(lines, "\n"))
}

// formatClock renders a duration as MM:SS, or H:MM:SS from one hour
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	mnt := int(d % time.Hour / time.Minute)
	sec := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mnt, sec)
	}
	return fmt.Sprintf("%02d:%02d", mnt, sec)
}
