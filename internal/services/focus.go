package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// PhaseNotifier receives every phase transition for user-facing feedback.
// Implementations must not block.
type PhaseNotifier interface {
	NotifyTransition(transition domain.PhaseTransition)
}

// StartResult is returned by FocusController.Start
type StartResult struct {
	// BlockingErr wraps domain.ErrBlockListUnavailable when the session runs
	// without enforced blocking. The session itself was still started.
	BlockingErr error
	Session     *domain.FocusSession
}

// ReconcileResult is returned by FocusController.ReconcileOnStartup
type ReconcileResult struct {
	Removed []string
	Stale   []string
}

// FocusController drives one focus session at a time and keeps the block list
// in sync with its phase: domains are blocked only while Working.
//
// The controller owns no timer. A driving loop calls Tick periodically.
// Every mutating method holds mu across reading the phase, mutating the block
// list and recording the new phase.
type FocusController struct {
	activityLog ports.ActivityLogger
	blockList   ports.HostBlockList
	elevated    bool
	mu          sync.Mutex
	newID       func() string
	notifier    PhaseNotifier
	now         func() time.Time
	session     *domain.FocusSession
}

// FocusOption customizes a FocusController
type FocusOption func(*FocusController)

// WithClock replaces time.Now, used by Start and Cancel
func WithClock(now func() time.Time) FocusOption {
	return func(c *FocusController) {
		c.now = now
	}
}

// WithIDGenerator replaces the session ID generator
func WithIDGenerator(newID func() string) FocusOption {
	return func(c *FocusController) {
		c.newID = newID
	}
}

// NewFocusController creates a FocusController. Elevation is checked once, here.
func NewFocusController(
	blockList ports.HostBlockList,
	elevation ports.ElevationChecker,
	activityLog ports.ActivityLogger,
	notifier PhaseNotifier,
	opts ...FocusOption,
) *FocusController {
	c := &FocusController{
		activityLog: activityLog,
		blockList:   blockList,
		elevated:    elevation.IsElevated(),
		newID:       uuid.NewString,
		notifier:    notifier,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	logging.Logger.Debug("Focus controller created", "elevated", c.elevated)
	return c
}

// ElevationAvailable reports whether the block list can be mutated
func (c *FocusController) ElevationAvailable() bool {
	return c.elevated
}

// Current returns a snapshot of the active session, or nil
func (c *FocusController) Current() *domain.FocusSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Clone()
}

// Start creates a session in the Working phase and blocks its domains.
// A block-list failure does not prevent the session from starting; it is
// reported through StartResult.BlockingErr.
func (c *FocusController) Start(ctx context.Context, plan domain.FocusPlan) (*StartResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil && !c.session.Phase.IsTerminal() {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionAlreadyActive, c.session.ID)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	domains, err := domain.NormalizeDomains(plan.Domains)
	if err != nil {
		return nil, err
	}

	cycles := plan.Cycles
	if cycles < 1 {
		cycles = 1
	}

	now := c.now()
	session := &domain.FocusSession{
		BreakDuration:  plan.BreakDuration,
		Cycle:          1,
		Cycles:         cycles,
		Domains:        domains,
		ID:             c.newID(),
		Notes:          plan.Notes,
		Phase:          domain.PhaseWorking,
		PhaseStartedAt: now,
		StartedAt:      now,
		WorkDuration:   plan.WorkDuration,
	}
	session.BlockingInert = !c.elevated && len(domains) > 0

	result := &StartResult{}
	result.BlockingErr = c.applyBlocking(session)
	c.session = session

	logging.Logger.InfoContext(ctx, "Focus session started",
		"session_id", session.ID,
		"work", session.WorkDuration,
		"break", session.BreakDuration,
		"cycles", session.Cycles,
		"domains", len(domains),
		"blocking_active", session.BlockingActive)

	c.record(domain.ActivityEvent{
		Details:  fmt.Sprintf("Focus session started: %s work, %s break, %d cycle(s)", session.WorkDuration, session.BreakDuration, session.Cycles),
		Duration: plan.PlannedDuration(),
		Metadata: map[string]any{
			"blocking_active": session.BlockingActive,
			"break_seconds":   int64(session.BreakDuration / time.Second),
			"cycles":          session.Cycles,
			"domains":         domain.BareDomains(domains),
			"notes":           session.Notes,
			"session_id":      session.ID,
		},
		Success:   true,
		Timestamp: now,
		Type:      domain.ActivityFocusStarted,
	})
	if session.BlockingActive {
		c.recordBlocking(session, domain.ActivityBlockingEnabled, now)
	}

	c.notify(domain.PhaseTransition{
		At:          now,
		BlockingErr: result.BlockingErr,
		Cycle:       session.Cycle,
		From:        domain.PhaseIdle,
		SessionID:   session.ID,
		To:          domain.PhaseWorking,
	})

	result.Session = session.Clone()
	return result, nil
}

// Tick advances the session when now has reached the current phase deadline.
// It returns nil when no boundary was crossed. At most one boundary is
// crossed per call and the next phase starts at the previous deadline, so a
// loop that resumes after a long pause catches up one phase per call.
//
// The returned error only reports activity log failures; the transition has
// been applied regardless. Block-list failures are carried in
// PhaseTransition.BlockingErr.
func (c *FocusController) Tick(now time.Time) (*domain.PhaseTransition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session
	if s == nil || !s.Phase.IsActive() {
		return nil, nil
	}

	deadline := s.PhaseDeadline()
	if now.Before(deadline) {
		return nil, nil
	}

	transition := domain.PhaseTransition{
		At:        deadline,
		From:      s.Phase,
		SessionID: s.ID,
	}

	wasBlocking := s.BlockingActive
	switch {
	case s.Phase == domain.PhaseWorking && s.BreakDuration > 0:
		s.Phase = domain.PhaseOnBreak
		s.PhaseStartedAt = deadline
		transition.BlockingErr = c.releaseBlocking(s)

	case s.Phase == domain.PhaseWorking && !s.IsLastCycle():
		// No break configured: next work interval, domains stay blocked
		s.Cycle++
		s.PhaseStartedAt = deadline
		if !s.BlockingActive && !s.BlockingInert {
			transition.BlockingErr = c.applyBlocking(s)
		}

	case s.Phase == domain.PhaseOnBreak && !s.IsLastCycle():
		s.Cycle++
		s.Phase = domain.PhaseWorking
		s.PhaseStartedAt = deadline
		if !s.BlockingInert {
			transition.BlockingErr = c.applyBlocking(s)
		}

	default:
		s.Phase = domain.PhaseCompleted
		s.EndedAt = deadline
		transition.BlockingErr = c.releaseBlocking(s)
	}

	transition.Cycle = s.Cycle
	transition.To = s.Phase

	logging.Logger.Info("Focus phase changed",
		"session_id", s.ID,
		"from", transition.From,
		"to", transition.To,
		"cycle", s.Cycle,
		"blocking_active", s.BlockingActive,
		"blocking_error", transition.BlockingErr)

	var logErr error
	if s.Phase == domain.PhaseCompleted {
		logErr = c.record(domain.ActivityEvent{
			Details:  fmt.Sprintf("Focus session completed after %d cycle(s)", s.Cycles),
			Duration: s.Elapsed(deadline),
			Metadata: map[string]any{
				"cycles":     s.Cycles,
				"session_id": s.ID,
			},
			Success:   true,
			Timestamp: deadline,
			Type:      domain.ActivityFocusCompleted,
		})
		c.session = nil
	} else {
		logErr = c.record(domain.ActivityEvent{
			Details: fmt.Sprintf("%s -> %s (cycle %d of %d)", transition.From, transition.To, s.Cycle, s.Cycles),
			Metadata: map[string]any{
				"cycle":      s.Cycle,
				"from":       string(transition.From),
				"session_id": s.ID,
				"to":         string(transition.To),
			},
			Success:   transition.BlockingErr == nil,
			Timestamp: deadline,
			Type:      domain.ActivityPhaseChanged,
		})
	}

	switch {
	case wasBlocking && !s.BlockingActive:
		logErr = errors.Join(logErr, c.recordBlocking(s, domain.ActivityBlockingDisabled, deadline))
	case !wasBlocking && s.BlockingActive:
		logErr = errors.Join(logErr, c.recordBlocking(s, domain.ActivityBlockingEnabled, deadline))
	}

	c.notify(transition)
	return &transition, logErr
}

// Cancel stops the active session and unblocks its domains immediately.
// The phase becomes Cancelled even when unblocking fails; that failure is
// returned alongside the terminal session snapshot.
func (c *FocusController) Cancel(ctx context.Context) (*domain.FocusSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session
	if s == nil || !s.Phase.IsActive() {
		return nil, domain.ErrNoActiveSession
	}

	now := c.now()
	from := s.Phase
	wasBlocking := s.BlockingActive

	s.Phase = domain.PhaseCancelled
	s.EndedAt = now
	blockErr := c.releaseBlocking(s)
	c.session = nil

	logging.Logger.InfoContext(ctx, "Focus session cancelled",
		"session_id", s.ID,
		"phase", from,
		"cycle", s.Cycle,
		"elapsed", s.Elapsed(now),
		"blocking_error", blockErr)

	c.record(domain.ActivityEvent{
		Details:  fmt.Sprintf("Focus session cancelled during %s (cycle %d of %d)", from.Label(), s.Cycle, s.Cycles),
		Duration: s.Elapsed(now),
		Metadata: map[string]any{
			"cycle":      s.Cycle,
			"phase":      string(from),
			"session_id": s.ID,
		},
		Success:   true,
		Timestamp: now,
		Type:      domain.ActivityFocusCancelled,
	})
	if wasBlocking && !s.BlockingActive {
		c.recordBlocking(s, domain.ActivityBlockingDisabled, now)
	}

	c.notify(domain.PhaseTransition{
		At:          now,
		BlockingErr: blockErr,
		Cycle:       s.Cycle,
		From:        from,
		SessionID:   s.ID,
		To:          domain.PhaseCancelled,
	})

	return s.Clone(), blockErr
}

// ReconcileOnStartup removes Perry-managed block-list entries that no active
// session claims. It recovers from a process that died while Working.
func (c *FocusController) ReconcileOnStartup(ctx context.Context) (*ReconcileResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.blockList.ListManagedEntries()
	if err != nil {
		return nil, blockListErr(err)
	}

	claimed := make(map[string]bool)
	if c.session != nil && c.session.Phase == domain.PhaseWorking && c.session.BlockingActive {
		for _, d := range c.session.Domains {
			claimed[d] = true
		}
	}

	result := &ReconcileResult{}
	for _, e := range entries {
		if !claimed[e] {
			result.Stale = append(result.Stale, e)
		}
	}
	if len(result.Stale) == 0 {
		logging.Logger.DebugContext(ctx, "No stale block-list entries")
		return result, nil
	}

	if err := c.blockList.RemoveEntries(result.Stale); err != nil {
		logging.Logger.WarnContext(ctx, "Failed to remove stale block-list entries", "count", len(result.Stale), "error", err)
		return result, blockListErr(err)
	}
	result.Removed = result.Stale

	logging.Logger.InfoContext(ctx, "Removed stale block-list entries", "count", len(result.Removed))
	c.record(domain.ActivityEvent{
		Details: fmt.Sprintf("Removed %d stale blocked site entries", len(result.Removed)),
		Metadata: map[string]any{
			"domains": result.Removed,
		},
		Success:   true,
		Timestamp: c.now(),
		Type:      domain.ActivityBlockingReconciled,
	})

	return result, nil
}

// applyBlocking adds the session domains to the block list
func (c *FocusController) applyBlocking(s *domain.FocusSession) error {
	if len(s.Domains) == 0 {
		return nil
	}
	if !c.elevated {
		return fmt.Errorf("%w: elevated privileges are required to edit the hosts file", domain.ErrBlockListUnavailable)
	}

	if err := c.blockList.AddEntries(s.Domains); err != nil {
		s.BlockingActive = false
		logging.Logger.Warn("Failed to block domains", "session_id", s.ID, "error", err)
		return blockListErr(err)
	}
	s.BlockingActive = true
	return nil
}

// releaseBlocking removes the session domains from the block list. Removal is
// attempted even when the last add failed, in case it was partially applied.
func (c *FocusController) releaseBlocking(s *domain.FocusSession) error {
	if len(s.Domains) == 0 || !c.elevated {
		return nil
	}

	if err := c.blockList.RemoveEntries(s.Domains); err != nil {
		logging.Logger.Error("Failed to unblock domains", "session_id", s.ID, "error", err)
		return blockListErr(err)
	}
	s.BlockingActive = false
	return nil
}

func (c *FocusController) recordBlocking(s *domain.FocusSession, typ domain.ActivityType, at time.Time) error {
	details := "Website blocking enabled"
	if typ == domain.ActivityBlockingDisabled {
		details = "Website blocking disabled"
	}
	return c.record(domain.ActivityEvent{
		Details: details,
		Metadata: map[string]any{
			"domains":    domain.BareDomains(s.Domains),
			"session_id": s.ID,
		},
		Success:   true,
		Timestamp: at,
		Type:      typ,
	})
}

// record appends to the activity log. Failures never affect session state.
func (c *FocusController) record(event domain.ActivityEvent) error {
	if err := c.activityLog.Append(event); err != nil {
		logging.Logger.Warn("Failed to write activity log", "type", event.Type, "error", err)
		return fmt.Errorf("failed to record %s: %w", event.Type, err)
	}
	return nil
}

func (c *FocusController) notify(transition domain.PhaseTransition) {
	if c.notifier != nil {
		c.notifier.NotifyTransition(transition)
	}
}

// blockListErr makes every block-list failure match domain.ErrBlockListUnavailable
func blockListErr(err error) error {
	if errors.Is(err, domain.ErrBlockListUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrBlockListUnavailable, err)
}
