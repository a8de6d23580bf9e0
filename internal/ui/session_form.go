package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
)

// customPreset selects user-provided durations in the form
const customPreset = "custom"

// SessionFormDefaults pre-fills the session form
type SessionFormDefaults struct {
	Block        bool
	BreakMinutes int
	Cycles       int
	Domains      []string // Blocklist used when Block is true
	Preset       string
	WorkMinutes  int
}

// sessionFormValues is bound to the huh fields
type sessionFormValues struct {
	block        bool
	breakMinutes string
	cycles       string
	notes        string
	preset       string
	workMinutes  string
}

// SessionForm is a Bubble Tea component for configuring a focus session
type SessionForm struct {
	Completed bool // Exported so Model can check completion
	cancelled bool
	defaults  SessionFormDefaults
	form      *huh.Form
	values    sessionFormValues
}

// NewSessionForm creates the focus session form
func NewSessionForm(defaults SessionFormDefaults) *SessionForm {
	sf := &SessionForm{
		defaults: defaults,
		values: sessionFormValues{
			block:        defaults.Block,
			breakMinutes: strconv.Itoa(defaults.BreakMinutes),
			cycles:       strconv.Itoa(max(defaults.Cycles, 1)),
			preset:       defaults.Preset,
			workMinutes:  strconv.Itoa(defaults.WorkMinutes),
		},
	}
	if sf.values.preset == "" {
		sf.values.preset = domain.DefaultPresetName
	}

	logging.Logger.Debug("Creating session form",
		"preset", sf.values.preset,
		"block", defaults.Block,
		"domains", len(defaults.Domains))

	options := make([]huh.Option[string], 0, len(domain.Presets)+1)
	for _, name := range domain.PresetNames() {
		options = append(options, huh.NewOption(domain.Presets[name].Description, name))
	}
	options = append(options, huh.NewOption("Custom durations", customPreset))

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Timer mode").
				Options(options...).
				Value(&sf.values.preset),
			huh.NewInput().
				Title("Cycles").
				Description("Work and break intervals to run").
				Value(&sf.values.cycles).
				Validate(validateCycles),
			huh.NewConfirm().
				Title("Block distracting sites?").
				Description(fmt.Sprintf("%d sites from your blocklist, only while working", len(defaults.Domains))).
				Value(&sf.values.block).
				Affirmative("Yes").
				Negative("No"),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Work minutes").
				Value(&sf.values.workMinutes).
				Validate(validateMinutes(false)),
			huh.NewInput().
				Title("Break minutes").
				Description("0 skips breaks").
				Value(&sf.values.breakMinutes).
				Validate(validateMinutes(true)),
		).WithHideFunc(func() bool {
			return sf.values.preset != customPreset
		}),
		huh.NewGroup(
			huh.NewText().
				Title("Notes (optional)").
				Description("What are you working on?").
				CharLimit(200).
				Value(&sf.values.notes),
		),
	)

	return sf
}

func (sf *SessionForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SessionForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	switch sf.form.State {
	case huh.StateCompleted:
		sf.Completed = true
	case huh.StateAborted:
		sf.Completed = true
		sf.cancelled = true
	}

	return sf, cmd
}

func (sf *SessionForm) View() string {
	return sf.form.View()
}

// Cancelled reports whether the user aborted the form
func (sf *SessionForm) Cancelled() bool {
	return sf.cancelled
}

// Plan builds the focus plan from the form values
func (sf *SessionForm) Plan() (domain.FocusPlan, error) {
	cycles, err := strconv.Atoi(strings.TrimSpace(sf.values.cycles))
	if err != nil {
		return domain.FocusPlan{}, fmt.Errorf("invalid cycles %q: %w", sf.values.cycles, err)
	}

	plan := domain.FocusPlan{
		Cycles: cycles,
		Notes:  strings.TrimSpace(sf.values.notes),
	}

	if sf.values.preset == customPreset {
		work, err := parseMinutes(sf.values.workMinutes)
		if err != nil {
			return domain.FocusPlan{}, err
		}
		brk, err := parseMinutes(sf.values.breakMinutes)
		if err != nil {
			return domain.FocusPlan{}, err
		}
		plan.WorkDuration = work
		plan.BreakDuration = brk
	} else {
		preset, err := domain.LookupPreset(sf.values.preset)
		if err != nil {
			return domain.FocusPlan{}, err
		}
		plan.WorkDuration = preset.WorkDuration
		plan.BreakDuration = preset.BreakDuration
	}

	if sf.values.block {
		plan.Domains = append([]string(nil), sf.defaults.Domains...)
	}

	return plan, nil
}

func parseMinutes(s string) (time.Duration, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid minutes %q: %w", s, err)
	}
	return time.Duration(n) * time.Minute, nil
}

func validateCycles(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a whole number of at least 1")
	}
	return nil
}

func validateMinutes(allowZero bool) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		switch {
		case err != nil || n < 0:
			return fmt.Errorf("enter a whole number of minutes")
		case n == 0 && !allowZero:
			return fmt.Errorf("must be at least 1 minute")
		}
		return nil
	}
}
