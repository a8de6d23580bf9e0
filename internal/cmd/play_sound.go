package cmd

import (
	"fmt"
	"slices"

	"github.com/Vinyaaggarwal/Perry/internal/adapters/sound"
)

// PlaySoundCmd plays a phase sound
type PlaySoundCmd struct {
	Event string `arg:"" optional:"" help:"Phase event: work, break, complete, or cancel"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	if p.Event == "" {
		return cli.Container.NotificationService.PlaySound()
	}

	events := []string{sound.EventBreak, sound.EventCancel, sound.EventComplete, sound.EventWork}
	if !slices.Contains(events, p.Event) {
		return fmt.Errorf("unknown sound event %q (valid: %v)", p.Event, events)
	}
	return cli.Container.NotificationService.PlaySoundForEvent(p.Event)
}
