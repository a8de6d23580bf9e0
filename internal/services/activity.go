package services

import (
	"fmt"
	"time"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/logging"
	"github.com/Vinyaaggarwal/Perry/internal/ports"
)

// ActivityService reports on and maintains the activity log
type ActivityService struct {
	log ports.ActivityLog
	now func() time.Time
}

// NewActivityService creates a new ActivityService
func NewActivityService(log ports.ActivityLog) *ActivityService {
	return &ActivityService{
		log: log,
		now: time.Now,
	}
}

// Summary aggregates events since midnight days ago (local time)
func (s *ActivityService) Summary(days int) (*domain.ActivitySummary, error) {
	if days < 0 {
		return nil, fmt.Errorf("days cannot be negative, got %d", days)
	}

	since := s.cutoff(days)
	events, err := s.log.Read(since)
	if err != nil {
		return nil, err
	}

	summary := &domain.ActivitySummary{
		ByDate: make(map[string]int),
		ByType: make(map[domain.ActivityType]int),
		Since:  since,
		Total:  len(events),
	}
	for _, e := range events {
		summary.ByType[e.Type]++
		summary.ByDate[e.Timestamp.In(time.Local).Format("2006-01-02")]++

		switch e.Type {
		case domain.ActivityFocusStarted:
			summary.StartedSessions++
		case domain.ActivityFocusCompleted:
			summary.CompletedSessions++
			summary.FocusTime += e.Duration
		case domain.ActivityFocusCancelled:
			summary.CancelledSessions++
			summary.FocusTime += e.Duration
		}
	}

	return summary, nil
}

// Export copies the log to dst, or to a timestamped file in the current
// directory when dst is empty. Returns the destination path.
func (s *ActivityService) Export(dst string) (string, error) {
	if dst == "" {
		dst = fmt.Sprintf("activity_export_%s.csv", s.now().Format("20060102_150405"))
	}

	if err := s.log.Export(dst); err != nil {
		return "", err
	}

	s.record(domain.ActivityEvent{
		Details:  "Activity log exported",
		Metadata: map[string]any{"path": dst},
		Type:     domain.ActivityDataExported,
	})
	return dst, nil
}

// Prune removes events older than midnight days ago
func (s *ActivityService) Prune(days int) (int, error) {
	if days < 1 {
		return 0, fmt.Errorf("days must be at least 1, got %d", days)
	}

	removed, err := s.log.Prune(s.cutoff(days))
	if err != nil {
		return 0, err
	}

	s.record(domain.ActivityEvent{
		Details:  fmt.Sprintf("Removed %d activity entries older than %d days", removed, days),
		Metadata: map[string]any{"days": days, "removed": removed},
		Type:     domain.ActivityDataCleared,
	})
	return removed, nil
}

func (s *ActivityService) cutoff(days int) time.Time {
	now := s.now().In(time.Local)
	y, m, d := now.AddDate(0, 0, -days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func (s *ActivityService) record(event domain.ActivityEvent) {
	event.Success = true
	event.Timestamp = s.now()
	if err := s.log.Append(event); err != nil {
		logging.Logger.Warn("Failed to write activity log", "type", event.Type, "error", err)
	}
}
