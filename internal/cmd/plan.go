package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Vinyaaggarwal/Perry/internal/config"
	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
)

// PlanFlags are the session flags shared by focus and start
type PlanFlags struct {
	Block   bool     `help:"Block sites even when block_by_default is false"`
	Break   int      `help:"Break minutes (0 skips breaks)" default:"-1"`
	Cycles  int      `help:"Number of work and break cycles" short:"c"`
	NoBlock bool     `help:"Run the timer without blocking sites"`
	Notes   string   `help:"What you are working on"`
	Preset  string   `help:"Timer preset (pomodoro, quick, study)" short:"p"`
	Site    []string `help:"Extra site to block for this session (repeatable)" short:"s"`
	Work    int      `help:"Work minutes" short:"w"`
}

// resolvedPlan is a plan plus the inputs the TUI form is pre-filled with
type resolvedPlan struct {
	blocklist  []string // Sites used when blocking is on
	plan       domain.FocusPlan
	presetName string
}

// explicit reports whether any timer flag was passed
func (f PlanFlags) explicit() bool {
	return f.Preset != "" || f.Work > 0 || f.Break >= 0 || f.Cycles > 0
}

// resolvePlan applies precedence flags > settings.json > preset defaults
func resolvePlan(
	flags PlanFlags,
	settings *config.Settings,
	blockByDefault bool,
	blocklist []string,
) (*resolvedPlan, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	presetName := flags.Preset
	if presetName == "" {
		presetName = settings.DefaultPreset
	}
	if presetName == "" {
		presetName = domain.DefaultPresetName
	}
	preset, err := domain.LookupPreset(presetName)
	if err != nil {
		return nil, err
	}

	plan := domain.FocusPlan{
		BreakDuration: preset.BreakDuration,
		Cycles:        1,
		Notes:         flags.Notes,
		WorkDuration:  preset.WorkDuration,
	}

	// settings.json durations only refine the default preset, not an explicit one
	if flags.Preset == "" {
		if settings.WorkMinutes != nil && *settings.WorkMinutes > 0 {
			plan.WorkDuration = time.Duration(*settings.WorkMinutes) * time.Minute
		}
		if settings.BreakMinutes != nil && *settings.BreakMinutes >= 0 {
			plan.BreakDuration = time.Duration(*settings.BreakMinutes) * time.Minute
		}
	}
	if settings.Cycles != nil && *settings.Cycles > 0 {
		plan.Cycles = *settings.Cycles
	}

	if flags.Work > 0 {
		plan.WorkDuration = time.Duration(flags.Work) * time.Minute
	}
	if flags.Break >= 0 {
		plan.BreakDuration = time.Duration(flags.Break) * time.Minute
	}
	if flags.Cycles > 0 {
		plan.Cycles = flags.Cycles
	}

	extra, err := domain.NormalizeDomains(append(append([]string(nil), settings.ExtraSites...), flags.Site...))
	if err != nil {
		return nil, err
	}
	sites := domain.ExpandWWWVariants(append(append([]string(nil), blocklist...), extra...))

	if (blockByDefault || flags.Block) && !flags.NoBlock {
		plan.Domains = sites
	}

	return &resolvedPlan{
		blocklist:  sites,
		plan:       plan,
		presetName: presetName,
	}, nil
}

// planFromContainer resolves the plan against the stored blocklist
func planFromContainer(ctx context.Context, cli *CLI, flags PlanFlags) (*resolvedPlan, error) {
	blocklist, err := cli.Container.SiteService.Domains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocklist: %w", err)
	}

	resolved, err := resolvePlan(flags, cli.LoadedSettings(), cli.Container.Runtime.BlockByDefault, blocklist)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Focus plan resolved",
		"preset", resolved.presetName,
		"work", resolved.plan.WorkDuration,
		"break", resolved.plan.BreakDuration,
		"cycles", resolved.plan.Cycles,
		"domains", len(resolved.plan.Domains))
	return resolved, nil
}

// reconcile removes stale blocking before a new session and reports it
func reconcile(ctx context.Context, cli *CLI) {
	result, err := cli.Container.FocusController.ReconcileOnStartup(ctx)
	if err != nil {
		logging.Logger.Warn("Startup reconciliation failed", "error", err)
		fmt.Printf("Warning: could not clean up stale blocking: %v\n", err)
		return
	}
	if len(result.Removed) > 0 {
		fmt.Printf("Removed %d stale blocked sites from an interrupted session\n", len(result.Removed))
	}
}
