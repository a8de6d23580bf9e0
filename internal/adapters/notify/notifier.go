package notify

import (
	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// AppName is shown as the notification source where the platform supports it
const AppName = "Perry"

// Desktop implements ports.Notifier with the platform notification tools
type Desktop struct{}

var _ ports.Notifier = (*Desktop)(nil)

// NewDesktop creates a new desktop notifier
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Notify shows a desktop notification.
// Platform-specific implementations are in notifier_*.go files with build tags.
func (d *Desktop) Notify(title, body string) error {
	return notify(title, body)
}

// Nop implements ports.Notifier and drops every notification
type Nop struct{}

var _ ports.Notifier = (*Nop)(nil)

// Notify does nothing
func (Nop) Notify(title, body string) error {
	return nil
}
