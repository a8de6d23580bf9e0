package ports

import (
	"time"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
)

// ActivityLogger appends one row per event and never mutates prior rows
type ActivityLogger interface {
	Append(event domain.ActivityEvent) error
}

// ActivityReader reads events back for summaries
type ActivityReader interface {
	// Read returns events with a timestamp at or after since, oldest first
	Read(since time.Time) ([]domain.ActivityEvent, error)
}

// ActivityMaintainer performs explicit user-requested maintenance on the log
type ActivityMaintainer interface {
	// Export copies the log to dst
	Export(dst string) error

	// Prune drops rows older than before and returns how many were removed
	Prune(before time.Time) (int, error)
}

// ActivityLog is the composite interface
type ActivityLog interface {
	ActivityLogger
	ActivityMaintainer
	ActivityReader
}
