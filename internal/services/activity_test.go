package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	portsmocks "github.com/Vinyaaggarwal/Perry/internal/ports/mocks"
)

func TestActivityService_Summary(t *testing.T) {
	log := portsmocks.NewMockActivityLog(t)
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.Local)
	day1 := time.Date(2026, 6, 9, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 6, 10, 9, 0, 0, 0, time.Local)

	log.EXPECT().Read(time.Date(2026, 6, 3, 0, 0, 0, 0, time.Local)).Return([]domain.ActivityEvent{
		{Type: domain.ActivityFocusStarted, Timestamp: day1},
		{Type: domain.ActivityFocusCompleted, Timestamp: day1, Duration: 30 * time.Minute},
		{Type: domain.ActivityFocusStarted, Timestamp: day2},
		{Type: domain.ActivityFocusCancelled, Timestamp: day2, Duration: 10 * time.Minute},
		{Type: domain.ActivitySiteAdded, Timestamp: day2},
	}, nil)

	service := NewActivityService(log)
	service.now = func() time.Time { return now }

	summary, err := service.Summary(7)

	require.NoError(t, err)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.StartedSessions)
	assert.Equal(t, 1, summary.CompletedSessions)
	assert.Equal(t, 1, summary.CancelledSessions)
	assert.Equal(t, 40*time.Minute, summary.FocusTime)
	assert.Equal(t, map[string]int{"2026-06-09": 2, "2026-06-10": 3}, summary.ByDate)
	assert.Equal(t, 2, summary.ByType[domain.ActivityFocusStarted])
}

func TestActivityService_SummaryNegativeDays(t *testing.T) {
	service := NewActivityService(portsmocks.NewMockActivityLog(t))

	_, err := service.Summary(-1)

	assert.Error(t, err)
}

func TestActivityService_ExportDefaultName(t *testing.T) {
	log := portsmocks.NewMockActivityLog(t)
	now := time.Date(2026, 6, 10, 15, 4, 5, 0, time.Local)

	log.EXPECT().Export("activity_export_20260610_150405.csv").Return(nil)
	log.EXPECT().Append(mock.MatchedBy(func(e domain.ActivityEvent) bool {
		return e.Type == domain.ActivityDataExported
	})).Return(nil)

	service := NewActivityService(log)
	service.now = func() time.Time { return now }

	path, err := service.Export("")

	require.NoError(t, err)
	assert.Equal(t, "activity_export_20260610_150405.csv", path)
}

func TestActivityService_Prune(t *testing.T) {
	log := portsmocks.NewMockActivityLog(t)
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.Local)

	log.EXPECT().Prune(time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)).Return(4, nil)
	log.EXPECT().Append(mock.MatchedBy(func(e domain.ActivityEvent) bool {
		return e.Type == domain.ActivityDataCleared
	})).Return(nil)

	service := NewActivityService(log)
	service.now = func() time.Time { return now }

	removed, err := service.Prune(30)

	require.NoError(t, err)
	assert.Equal(t, 4, removed)
}

func TestActivityService_PruneRejectsZeroDays(t *testing.T) {
	service := NewActivityService(portsmocks.NewMockActivityLog(t))

	_, err := service.Prune(0)

	assert.Error(t, err)
}
