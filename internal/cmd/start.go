package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/services"
)

// StartCmd runs a focus session in the foreground without the TUI
type StartCmd struct {
	PlanFlags `embed:""`
}

// Run executes the headless session loop
func (s *StartCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reconcile(ctx, cli)

	resolved, err := planFromContainer(ctx, cli, s.PlanFlags)
	if err != nil {
		return err
	}

	runner := &headlessRunner{
		controller:   cli.Container.FocusController,
		in:           os.Stdin,
		out:          os.Stdout,
		tickInterval: cli.Container.Runtime.TickInterval,
	}
	final, err := runner.Run(ctx, resolved.plan)
	cli.Container.NotificationService.Wait()
	printFinalSession(final)
	return err
}

// headlessRunner ticks the controller and listens for a cancel command on
// stdin. Both run in one errgroup; an interrupt cancels the session.
type headlessRunner struct {
	controller   *services.FocusController
	in           io.Reader
	out          io.Writer
	tickInterval time.Duration

	done  chan struct{}
	final *domain.FocusSession
	last  *domain.FocusSession // Latest snapshot, owned by tickLoop
	mu    sync.Mutex
	once  sync.Once
}

// Run starts the plan and blocks until the session ends
func (r *headlessRunner) Run(ctx context.Context, plan domain.FocusPlan) (*domain.FocusSession, error) {
	result, err := r.controller.Start(ctx, plan)
	if err != nil {
		return nil, err
	}

	session := result.Session
	r.last = session
	fmt.Fprintf(r.out, "%s %s started: %s work, %s break, %d cycle(s), %d sites blocked\n",
		session.Phase.Symbol(),
		session.Phase.Label(),
		session.WorkDuration,
		session.BreakDuration,
		session.Cycles,
		len(session.Domains))
	if result.BlockingErr != nil {
		fmt.Fprintf(r.out, "Warning: %v\n", result.BlockingErr)
	}
	fmt.Fprintln(r.out, "Type c and press Enter to cancel.")

	r.done = make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.tickLoop(gctx)
	})
	g.Go(func() error {
		return r.readCancel(gctx)
	})

	err = g.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.final, err
}

func (r *headlessRunner) finish(s *domain.FocusSession) {
	r.once.Do(func() {
		r.mu.Lock()
		r.final = s
		r.mu.Unlock()
		close(r.done)
	})
}

func (r *headlessRunner) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return nil
		case <-ctx.Done():
			logging.Logger.Info("Interrupted, cancelling focus session")
			return r.cancel()
		case now := <-ticker.C:
			if r.advance(now) {
				return nil
			}
		}
	}
}

// advance ticks until no boundary is left and reports whether the session ended
func (r *headlessRunner) advance(now time.Time) bool {
	for {
		transition, err := r.controller.Tick(now)
		if err != nil {
			logging.Logger.Warn("Failed to record phase change", "error", err)
		}
		if transition == nil {
			return false
		}

		fmt.Fprintf(r.out, "%s %s (cycle %d)\n", transition.To.Symbol(), transition.To.Label(), transition.Cycle)
		if transition.BlockingErr != nil {
			fmt.Fprintf(r.out, "Warning: %v\n", transition.BlockingErr)
		}

		if transition.To.IsTerminal() {
			final := r.last.Clone()
			final.BlockingActive = false
			final.Cycle = transition.Cycle
			final.EndedAt = transition.At
			final.Phase = transition.To
			r.finish(final)
			return true
		}
		if current := r.controller.Current(); current != nil {
			r.last = current
		}
	}
}

func (r *headlessRunner) readCancel(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-r.done:
				return
			}
		}
	}()

	for {
		select {
		case <-r.done:
			return nil
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				// stdin closed; keep running until the session ends
				lines = nil
				continue
			}
			if strings.EqualFold(strings.TrimSpace(line), "c") {
				return r.cancel()
			}
		}
	}
}

func (r *headlessRunner) cancel() error {
	session, err := r.controller.Cancel(context.Background())
	if errors.Is(err, domain.ErrNoActiveSession) {
		// Completed concurrently
		return nil
	}
	if session != nil {
		fmt.Fprintf(r.out, "%s %s\n", session.Phase.Symbol(), session.Phase.Label())
		r.finish(session)
	}
	if err != nil {
		return fmt.Errorf("session cancelled but sites may still be blocked: %w", err)
	}
	return nil
}
