package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/services"
	"github.com/Vinyaaggarwal/Perry/internal/ui"
)

// FocusCmd starts the focus timer TUI
type FocusCmd struct {
	PlanFlags `embed:""`

	Dev bool `help:"Enable development mode (shows version info in the header)"`
	Now bool `help:"Start immediately instead of showing the session form"`
}

// Run executes the TUI
func (f *FocusCmd) Run(cli *CLI) error {
	ctx := context.Background()
	reconcile(ctx, cli)

	resolved, err := planFromContainer(ctx, cli, f.PlanFlags)
	if err != nil {
		return err
	}

	opts := ui.Options{
		DevMode: f.Dev,
		FormDefaults: ui.SessionFormDefaults{
			Block:        len(resolved.plan.Domains) > 0,
			BreakMinutes: int(resolved.plan.BreakDuration / time.Minute),
			Cycles:       resolved.plan.Cycles,
			Domains:      resolved.blocklist,
			Preset:       resolved.presetName,
			WorkMinutes:  int(resolved.plan.WorkDuration / time.Minute),
		},
		TickInterval: cli.Container.Runtime.TickInterval,
	}
	if f.Now || f.explicit() {
		plan := resolved.plan
		opts.AutoStart = &plan
	}

	if !cli.Container.FocusController.ElevationAvailable() {
		logging.Logger.Warn("Hosts file is not writable, sites will not be blocked",
			"hosts_file", cli.Container.Runtime.HostsPath)
	}

	model := ui.NewModel(cli.Container.FocusController, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	_, runErr := p.Run()
	released, releaseErr := releaseOnExit(ctx, cli.Container.FocusController)
	if runErr != nil {
		logging.Logger.Error("TUI program error", "error", runErr)
		return errors.Join(fmt.Errorf("error running program: %w", runErr), releaseErr)
	}
	logging.Logger.Info("TUI program exited normally")

	cli.Container.NotificationService.Wait()
	final := model.FinalSession()
	if released != nil {
		final = released
	}
	printFinalSession(final)
	return releaseErr
}

// releaseOnExit cancels any session still active after the TUI returns.
// bubbletea turns SIGTERM into a clean quit that never reaches the model.
func releaseOnExit(ctx context.Context, controller *services.FocusController) (*domain.FocusSession, error) {
	session, err := controller.Cancel(ctx)
	if errors.Is(err, domain.ErrNoActiveSession) {
		return nil, nil
	}
	if session != nil {
		logging.Logger.Info("Cancelled focus session left running at exit", "session_id", session.ID)
	}
	if err != nil {
		return session, fmt.Errorf("session cancelled but sites may still be blocked: %w", err)
	}
	return session, nil
}

// printFinalSession prints a one-line outcome after the TUI or headless loop
func printFinalSession(s *domain.FocusSession) {
	if s == nil {
		return
	}
	fmt.Printf("%s %s after %s (cycle %d of %d)\n",
		s.Phase.Symbol(),
		s.Phase.Label(),
		s.Elapsed(s.EndedAt).Round(time.Second),
		s.Cycle,
		s.Cycles)
}
