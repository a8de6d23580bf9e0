package domain

import "time"

// ActivityType identifies a row in the activity log
type ActivityType string

const (
	ActivityBlockingDisabled   ActivityType = "website_blocking_disabled"
	ActivityBlockingEnabled    ActivityType = "website_blocking_enabled"
	ActivityBlockingReconciled ActivityType = "blocking_reconciled"
	ActivityDataCleared        ActivityType = "data_cleared"
	ActivityDataExported       ActivityType = "data_exported"
	ActivityFocusCancelled     ActivityType = "focus_session_cancelled"
	ActivityFocusCompleted     ActivityType = "focus_session_completed"
	ActivityFocusStarted       ActivityType = "focus_session_started"
	ActivityPhaseChanged       ActivityType = "focus_phase_changed"
	ActivitySiteAdded          ActivityType = "blocked_site_added"
	ActivitySiteRemoved        ActivityType = "blocked_site_removed"
)

// ActivityEvent is one append-only row of the activity log
type ActivityEvent struct {
	Details   string
	Duration  time.Duration
	Metadata  map[string]any
	Success   bool
	Timestamp time.Time
	Type      ActivityType
}

// ActivitySummary aggregates activity events over a time window
type ActivitySummary struct {
	ByDate            map[string]int
	ByType            map[ActivityType]int
	CancelledSessions int
	CompletedSessions int
	FocusTime         time.Duration
	Since             time.Time
	StartedSessions   int
	Total             int
}
