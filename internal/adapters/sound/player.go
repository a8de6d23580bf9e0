package sound

import (
	"fmt"

	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// Phase events understood by PlaySoundForEvent
const (
	EventBreak    = "break"
	EventCancel   = "cancel"
	EventComplete = "complete"
	EventWork     = "work"
)

// Player implements ports.SoundPlayer
type Player struct{}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays a cross-platform notification sound (default)
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(EventComplete)
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	return playForEvent(eventType)
}

// Silent implements ports.SoundPlayer without making any noise
type Silent struct{}

var _ ports.SoundPlayer = (*Silent)(nil)

// PlaySound does nothing
func (Silent) PlaySound() error { return nil }

// PlaySoundForEvent does nothing
func (Silent) PlaySoundForEvent(string) error { return nil }

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
