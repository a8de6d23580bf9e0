//go:build windows

package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

const balloonScript = `Add-Type -AssemblyName System.Windows.Forms
$n = New-Object System.Windows.Forms.NotifyIcon
$n.Icon = [System.Drawing.SystemIcons]::Information
$n.Visible = $true
$n.ShowBalloonTip(5000, '%s', '%s', 'Info')
Start-Sleep -Seconds 5
$n.Dispose()`

// notify shows a tray balloon through PowerShell
func notify(title, body string) error {
	script := fmt.Sprintf(balloonScript, psQuote(title), psQuote(body))
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("powershell failed: %w", err)
	}
	go cmd.Wait()
	return nil
}

// psQuote escapes a value for a single-quoted PowerShell string
func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
