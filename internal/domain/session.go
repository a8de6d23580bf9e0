package domain

import (
	"fmt"
	"time"
)

// Phase represents the current stage of a focus session
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseWorking   Phase = "working"
	PhaseOnBreak   Phase = "on_break"
	PhaseCompleted Phase = "completed"
	PhaseCancelled Phase = "cancelled"
)

// Phase symbols (Unicode)
const (
	SymbolIdle      = "○" // Gray - not started
	SymbolWorking   = "●" // Red - focusing, sites blocked
	SymbolOnBreak   = "◐" // Green - break, sites unblocked
	SymbolCompleted = "✓"
	SymbolCancelled = "■"
)

// IsTerminal reports whether no further transition can leave this phase
func (p Phase) IsTerminal() bool {
	return p == PhaseCompleted || p == PhaseCancelled
}

// IsActive reports whether the phase can be cancelled
func (p Phase) IsActive() bool {
	return p == PhaseWorking || p == PhaseOnBreak
}

// Symbol returns the status symbol for the phase
func (p Phase) Symbol() string {
	switch p {
	case PhaseWorking:
		return SymbolWorking
	case PhaseOnBreak:
		return SymbolOnBreak
	case PhaseCompleted:
		return SymbolCompleted
	case PhaseCancelled:
		return SymbolCancelled
	default:
		return SymbolIdle
	}
}

// Label returns a human readable phase name
func (p Phase) Label() string {
	switch p {
	case PhaseWorking:
		return "Focus"
	case PhaseOnBreak:
		return "Break"
	case PhaseCompleted:
		return "Completed"
	case PhaseCancelled:
		return "Cancelled"
	default:
		return "Idle"
	}
}

// FocusPlan holds the parameters a focus session is created from
type FocusPlan struct {
	BreakDuration time.Duration
	Cycles        int
	Domains       []string
	Notes         string
	WorkDuration  time.Duration
}

// Validate checks durations and cycle count. Domains are validated separately
// because they are normalized first.
func (p FocusPlan) Validate() error {
	if p.WorkDuration <= 0 {
		return fmt.Errorf("%w: work duration must be positive, got %s", ErrInvalidDuration, p.WorkDuration)
	}
	if p.BreakDuration < 0 {
		return fmt.Errorf("%w: break duration cannot be negative, got %s", ErrInvalidDuration, p.BreakDuration)
	}
	if p.Cycles < 0 {
		return fmt.Errorf("%w: cycles cannot be negative, got %d", ErrInvalidDuration, p.Cycles)
	}
	return nil
}

// PlannedDuration returns the total wall-clock length of the plan
func (p FocusPlan) PlannedDuration() time.Duration {
	cycles := p.Cycles
	if cycles < 1 {
		cycles = 1
	}
	return time.Duration(cycles) * (p.WorkDuration + p.BreakDuration)
}

// FocusSession represents one focus/break cycle run (domain entity)
type FocusSession struct {
	BlockingActive bool // Domains are currently written to the block list
	BlockingInert  bool // Blocking cannot be enforced for this session
	BreakDuration  time.Duration
	Cycle          int
	Cycles         int
	Domains        []string
	EndedAt        time.Time
	ID             string
	Notes          string
	Phase          Phase
	PhaseStartedAt time.Time
	StartedAt      time.Time
	WorkDuration   time.Duration
}

// PhaseDuration returns the length of the current phase
func (s *FocusSession) PhaseDuration() time.Duration {
	switch s.Phase {
	case PhaseWorking:
		return s.WorkDuration
	case PhaseOnBreak:
		return s.BreakDuration
	default:
		return 0
	}
}

// PhaseDeadline returns the moment the current phase ends
func (s *FocusSession) PhaseDeadline() time.Time {
	return s.PhaseStartedAt.Add(s.PhaseDuration())
}

// Remaining returns the time left in the current phase, never negative
func (s *FocusSession) Remaining(now time.Time) time.Duration {
	if !s.Phase.IsActive() {
		return 0
	}
	remaining := s.PhaseDeadline().Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Elapsed returns the time since the session started. Terminal sessions
// report the time up to EndedAt.
func (s *FocusSession) Elapsed(now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	end := now
	if s.Phase.IsTerminal() && !s.EndedAt.IsZero() {
		end = s.EndedAt
	}
	if end.Before(s.StartedAt) {
		return 0
	}
	return end.Sub(s.StartedAt)
}

// PhaseProgress returns the completed fraction of the current phase in [0, 1]
func (s *FocusSession) PhaseProgress(now time.Time) float64 {
	total := s.PhaseDuration()
	if total <= 0 {
		return 1
	}
	done := now.Sub(s.PhaseStartedAt)
	if done <= 0 {
		return 0
	}
	if done >= total {
		return 1
	}
	return float64(done) / float64(total)
}

// IsLastCycle reports whether the session is in its final planned cycle
func (s *FocusSession) IsLastCycle() bool {
	return s.Cycle >= s.Cycles
}

// Clone returns a copy that does not share the domain slice
func (s *FocusSession) Clone() *FocusSession {
	if s == nil {
		return nil
	}
	c := *s
	c.Domains = append([]string(nil), s.Domains...)
	return &c
}
