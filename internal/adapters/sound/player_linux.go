//go:build linux

package sound

import "os/exec"

type soundCommand struct {
	cmd  string
	args []string
}

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// playForEvent plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForEvent(eventType string) error {
	var name string
	switch eventType {
	case EventWork:
		name = "service-login"
	case EventBreak:
		name = "message"
	case EventComplete:
		name = "complete"
	case EventCancel:
		name = "dialog-warning"
	default:
		name = "bell"
	}

	sounds := []soundCommand{
		{"paplay", []string{freedesktopSounds + name + ".oga"}},
		{"aplay", []string{freedesktopSounds + name + ".wav"}},
		{"paplay", []string{freedesktopSounds + "bell.oga"}},
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
