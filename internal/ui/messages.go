package ui

import (
	"time"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/services"
)

// tickMsg drives FocusController.Tick at the configured interval
type tickMsg time.Time

// sessionStartedMsg is sent when FocusController.Start returns
type sessionStartedMsg struct {
	err    error
	result *services.StartResult
}

// sessionCancelledMsg is sent when FocusController.Cancel returns
type sessionCancelledMsg struct {
	err     error
	session *domain.FocusSession
}
