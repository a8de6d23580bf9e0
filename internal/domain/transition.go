package domain

import "time"

// PhaseTransition represents a phase boundary crossed by a focus session
type PhaseTransition struct {
	At          time.Time
	BlockingErr error // Set when the block-list mutation for this transition failed
	Cycle       int
	From        Phase
	SessionID   string
	To          Phase
}

// Event returns the short event name used for sounds and log details
func (t PhaseTransition) Event() string {
	switch t.To {
	case PhaseWorking:
		return "work"
	case PhaseOnBreak:
		return "break"
	case PhaseCompleted:
		return "complete"
	case PhaseCancelled:
		return "cancel"
	default:
		return "unknown"
	}
}
