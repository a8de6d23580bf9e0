//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strconv"
)

// notify uses AppleScript's display notification
func notify(title, body string) error {
	script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(body), strconv.Quote(title))
	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript failed: %w (%s)", err, out)
	}
	return nil
}
