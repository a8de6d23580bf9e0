package services

import (
	"fmt"
	"sync"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// NotificationService turns phase transitions into desktop notifications and sounds
type NotificationService struct {
	notifier    ports.Notifier
	pending     sync.WaitGroup
	soundPlayer ports.SoundPlayer
}

var _ PhaseNotifier = (*NotificationService)(nil)

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notifier ports.Notifier,
	soundPlayer ports.SoundPlayer,
) *NotificationService {
	return &NotificationService{
		notifier:    notifier,
		soundPlayer: soundPlayer,
	}
}

// NotifyTransition delivers the transition in the background and returns immediately
func (s *NotificationService) NotifyTransition(transition domain.PhaseTransition) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.Deliver(transition)
	}()
}

// Wait blocks until background deliveries finish
func (s *NotificationService) Wait() {
	s.pending.Wait()
}

// Deliver shows the notification and plays the sound for a transition.
// Failures are logged and swallowed.
func (s *NotificationService) Deliver(transition domain.PhaseTransition) {
	title, body := TransitionMessage(transition)

	if err := s.notifier.Notify(title, body); err != nil {
		logging.Logger.Warn("Failed to show notification", "title", title, "error", err)
	}

	if s.ShouldPlaySound(transition) {
		if err := s.PlaySoundForEvent(transition.Event()); err != nil {
			logging.Logger.Warn("Failed to play sound", "event", transition.Event(), "error", err)
		}
	}
}

// TransitionMessage returns the notification title and body for a transition
func TransitionMessage(transition domain.PhaseTransition) (string, string) {
	var title, body string
	switch transition.To {
	case domain.PhaseWorking:
		if transition.From == domain.PhaseIdle {
			title = "Focus session started"
			body = "Distracting sites are blocked. Stay focused!"
		} else {
			title = "Back to focus"
			body = fmt.Sprintf("Cycle %d started.", transition.Cycle)
		}
	case domain.PhaseOnBreak:
		title = "Break time"
		body = "Sites are unblocked. Take a breather."
	case domain.PhaseCompleted:
		title = "Focus session complete"
		body = "Great work! All cycles finished."
	case domain.PhaseCancelled:
		title = "Focus session cancelled"
		body = "Sites are unblocked."
	default:
		title = "Perry"
		body = fmt.Sprintf("Phase changed to %s.", transition.To.Label())
	}

	if transition.BlockingErr != nil {
		body += " Website blocking is unavailable."
	}
	return title, body
}

// ShouldPlaySound determines if a sound should be played for the transition
func (s *NotificationService) ShouldPlaySound(transition domain.PhaseTransition) bool {
	// Same-phase transitions (consecutive work cycles without a break) stay quiet
	return transition.From != transition.To
}

// PlaySound plays the default notification sound
func (s *NotificationService) PlaySound() error {
	logging.Logger.Debug("Playing notification sound")
	return s.soundPlayer.PlaySound()
}

// PlaySoundForEvent plays a sound for a specific event type
func (s *NotificationService) PlaySoundForEvent(eventType string) error {
	logging.Logger.Debug("Playing sound for event", "event", eventType)
	return s.soundPlayer.PlaySoundForEvent(eventType)
}

// SendTest shows a notification to verify the desktop integration
func (s *NotificationService) SendTest() error {
	return s.notifier.Notify("Perry", "Notifications are working.")
}
