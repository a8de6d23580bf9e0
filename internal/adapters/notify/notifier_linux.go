//go:build linux

package notify

import (
	"fmt"
	"os/exec"
)

// notify uses notify-send (libnotify)
func notify(title, body string) error {
	cmd := exec.Command("notify-send", "--app-name="+AppName, title, body)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send failed: %w (%s)", err, out)
	}
	return nil
}
