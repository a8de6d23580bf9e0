package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vinyaaggarwal/Perry/internal/adapters/activitylog"
	"github.com/Vinyaaggarwal/Perry/internal/adapters/hosts"
	"github.com/Vinyaaggarwal/Perry/internal/domain"
	portsmocks "github.com/Vinyaaggarwal/Perry/internal/ports/mocks"
	servicesmocks "github.com/Vinyaaggarwal/Perry/internal/services/mocks"
)

const initialHosts = "127.0.0.1 localhost\n::1 localhost ip6-localhost\n"

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type focusFixture struct {
	clock     *fakeClock
	ctrl      *FocusController
	hostsFile *hosts.File
	hostsPath string
	log       *activitylog.CSVLogger
	start     time.Time
}

func newFocusFixture(t *testing.T, hostsContent string) *focusFixture {
	t.Helper()

	dir := t.TempDir()
	hostsPath := filepath.Join(dir, "hosts")
	require.NoError(t, os.WriteFile(hostsPath, []byte(hostsContent), 0644))

	start := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: start}
	hostsFile := hosts.NewFile(hostsPath, "127.0.0.1", nil)
	log := activitylog.NewCSVLogger(filepath.Join(dir, "activity.csv"))

	notifier := servicesmocks.NewMockPhaseNotifier(t)
	notifier.EXPECT().NotifyTransition(mock.Anything).Maybe()

	ctrl := NewFocusController(hostsFile, hosts.NewElevationChecker(hostsPath), log, notifier, WithClock(clock.Now))
	require.True(t, ctrl.ElevationAvailable())

	return &focusFixture{
		clock:     clock,
		ctrl:      ctrl,
		hostsFile: hostsFile,
		hostsPath: hostsPath,
		log:       log,
		start:     start,
	}
}

func (f *focusFixture) managed(t *testing.T) []string {
	t.Helper()
	entries, err := f.hostsFile.ListManagedEntries()
	require.NoError(t, err)
	return entries
}

func (f *focusFixture) hostsContent(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.hostsPath)
	require.NoError(t, err)
	return string(data)
}

func (f *focusFixture) countEvents(t *testing.T, typ domain.ActivityType) int {
	t.Helper()
	events, err := f.log.Read(time.Time{})
	require.NoError(t, err)
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func pomodoroPlan(domains ...string) domain.FocusPlan {
	return domain.FocusPlan{
		BreakDuration: 5 * time.Minute,
		Cycles:        1,
		Domains:       domains,
		WorkDuration:  25 * time.Minute,
	}
}

func TestStart_BlocksDomainsThenBreakUnblocks(t *testing.T) {
	f := newFocusFixture(t, initialHosts)

	result, err := f.ctrl.Start(context.Background(), pomodoroPlan("instagram.com"))

	require.NoError(t, err)
	require.NoError(t, result.BlockingErr)
	assert.Equal(t, domain.PhaseWorking, result.Session.Phase)
	assert.True(t, result.Session.BlockingActive)
	assert.Equal(t, []string{"instagram.com"}, f.managed(t))

	tr, err := f.ctrl.Tick(f.start.Add(25*time.Minute + time.Second))

	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, domain.PhaseWorking, tr.From)
	assert.Equal(t, domain.PhaseOnBreak, tr.To)
	assert.Equal(t, f.start.Add(25*time.Minute), tr.At)
	assert.NoError(t, tr.BlockingErr)
	assert.Empty(t, f.managed(t))
	assert.Equal(t, initialHosts, f.hostsContent(t))
	assert.Equal(t, domain.PhaseOnBreak, f.ctrl.Current().Phase)
}

func TestTick_BeforeDeadlineReturnsNil(t *testing.T) {
	f := newFocusFixture(t, initialHosts)
	_, err := f.ctrl.Start(context.Background(), pomodoroPlan("x.com"))
	require.NoError(t, err)

	tr, err := f.ctrl.Tick(f.start.Add(25*time.Minute - time.Nanosecond))

	require.NoError(t, err)
	assert.Nil(t, tr)
	assert.Equal(t, domain.PhaseWorking, f.ctrl.Current().Phase)
}

func TestTick_NoSessionReturnsNil(t *testing.T) {
	f := newFocusFixture(t, initialHosts)

	tr, err := f.ctrl.Tick(f.start.Add(time.Hour))

	require.NoError(t, err)
	assert.Nil(t, tr)
}

func TestTick_FullCycles(t *testing.T) {
	f := newFocusFixture(t, initialHosts)
	plan := domain.FocusPlan{
		BreakDuration: 5 * time.Minute,
		Cycles:        2,
		Domains:       []string{"reddit.com", "www.reddit.com"},
		WorkDuration:  10 * time.Minute,
	}
	_, err := f.ctrl.Start(context.Background(), plan)
	require.NoError(t, err)

	steps := []struct {
		at      time.Duration
		to      domain.Phase
		cycle   int
		blocked bool
	}{
		{10 * time.Minute, domain.PhaseOnBreak, 1, false},
		{15 * time.Minute, domain.PhaseWorking, 2, true},
		{25 * time.Minute, domain.PhaseOnBreak, 2, false},
		{30 * time.Minute, domain.PhaseCompleted, 2, false},
	}

	for _, step := range steps {
		tr, err := f.ctrl.Tick(f.start.Add(step.at))
		require.NoError(t, err)
		require.NotNil(t, tr, "expected transition at %s", step.at)
		assert.Equal(t, step.to, tr.To)
		assert.Equal(t, step.cycle, tr.Cycle)
		if step.blocked {
			assert.Equal(t, []string{"reddit.com", "www.reddit.com"}, f.managed(t))
		} else {
			assert.Empty(t, f.managed(t))
		}
	}

	assert.Nil(t, f.ctrl.Current(), "terminal session must be released")
	assert.Equal(t, initialHosts, f.hostsContent(t))
	assert.Equal(t, 1, f.countEvents(t, domain.ActivityFocusStarted))
	assert.Equal(t, 1, f.countEvents(t, domain.ActivityFocusCompleted))
	assert.Equal(t, 3, f.countEvents(t, domain.ActivityPhaseChanged))
	assert.Equal(t, 2, f.countEvents(t, domain.ActivityBlockingEnabled))
	assert.Equal(t, 2, f.countEvents(t, domain.ActivityBlockingDisabled))

	_, err = f.ctrl.Cancel(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestTick_ZeroBreakKeepsBlocking(t *testing.T) {
	f := newFocusFixture(t, initialHosts)
	plan := domain.FocusPlan{
		Cycles:       2,
		Domains:      []string{"x.com"},
		WorkDuration: 15 * time.Minute,
	}
	_, err := f.ctrl.Start(context.Background(), plan)
	require.NoError(t, err)

	tr, err := f.ctrl.Tick(f.start.Add(15 * time.Minute))
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, domain.PhaseWorking, tr.From)
	assert.Equal(t, domain.PhaseWorking, tr.To)
	assert.Equal(t, 2, tr.Cycle)
	assert.Equal(t, []string{"x.com"}, f.managed(t))

	tr, err = f.ctrl.Tick(f.start.Add(30 * time.Minute))
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, domain.PhaseCompleted, tr.To)
	assert.Empty(t, f.managed(t))
}

func TestTick_CatchesUpOneBoundaryPerCall(t *testing.T) {
	f := newFocusFixture(t, initialHosts)
	plan := domain.FocusPlan{
		BreakDuration: 5 * time.Minute,
		Cycles:        2,
		Domains:       []string{"x.com"},
		WorkDuration:  25 * time.Minute,
	}
	_, err := f.ctrl.Start(context.Background(), plan)
	require.NoError(t, err)

	// Resume long after the whole plan should have finished
	late := f.start.Add(3 * time.Hour)
	wantAt := []time.Duration{25 * time.Minute, 30 * time.Minute, 55 * time.Minute, 60 * time.Minute}
	wantTo := []domain.Phase{domain.PhaseOnBreak, domain.PhaseWorking, domain.PhaseOnBreak, domain.PhaseCompleted}

	for i := range wantAt {
		tr, err := f.ctrl.Tick(late)
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.Equal(t, wantTo[i], tr.To)
		assert.Equal(t, f.start.Add(wantAt[i]), tr.At)
	}

	tr, err := f.ctrl.Tick(late)
	require.NoError(t, err)
	assert.Nil(t, tr)
	assert.Empty(t, f.managed(t))
}

func TestBlockingInvariant_HoldsAcrossTicks(t *testing.T) {
	f := newFocusFixture(t, initialHosts)
	plan := domain.FocusPlan{
		BreakDuration: 3 * time.Minute,
		Cycles:        3,
		Domains:       []string{"a.com", "b.com"},
		WorkDuration:  7 * time.Minute,
	}
	_, err := f.ctrl.Start(context.Background(), plan)
	require.NoError(t, err)

	for elapsed := time.Duration(0); elapsed <= plan.PlannedDuration()+time.Minute; elapsed += 30 * time.Second {
		_, err := f.ctrl.Tick(f.start.Add(elapsed))
		require.NoError(t, err)

		current := f.ctrl.Current()
		if current != nil && current.Phase == domain.PhaseWorking {
			assert.Equal(t, []string{"a.com", "b.com"}, f.managed(t), "at %s", elapsed)
		} else {
			assert.Empty(t, f.managed(t), "at %s", elapsed)
		}
	}

	assert.Nil(t, f.ctrl.Current())
}

func TestCancel_RestoresHostsAndLogs(t *testing.T) {
	content := initialHosts + "# keep me\n10.1.2.3 intranet.example.com\n"
	f := newFocusFixture(t, content)
	_, err := f.ctrl.Start(context.Background(), pomodoroPlan("instagram.com", "youtube.com"))
	require.NoError(t, err)

	f.clock.Set(f.start.Add(7 * time.Minute))
	session, err := f.ctrl.Cancel(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseCancelled, session.Phase)
	assert.Equal(t, f.start.Add(7*time.Minute), session.EndedAt)
	assert.False(t, session.BlockingActive)
	assert.Equal(t, content, f.hostsContent(t))
	assert.Nil(t, f.ctrl.Current())
	assert.Equal(t, 1, f.countEvents(t, domain.ActivityFocusStarted))
	assert.Equal(t, 1, f.countEvents(t, domain.ActivityFocusCancelled))

	events, err := f.log.Read(time.Time{})
	require.NoError(t, err)
	for _, e := range events {
		if e.Type == domain.ActivityFocusCancelled {
			assert.Equal(t, 7*time.Minute, e.Duration)
		}
	}
}

func TestCancel_DuringBreak(t *testing.T) {
	f := newFocusFixture(t, initialHosts)
	_, err := f.ctrl.Start(context.Background(), pomodoroPlan("x.com"))
	require.NoError(t, err)
	_, err = f.ctrl.Tick(f.start.Add(25 * time.Minute))
	require.NoError(t, err)

	session, err := f.ctrl.Cancel(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseCancelled, session.Phase)
	assert.Empty(t, f.managed(t))
}

func TestCancel_NoActiveSession(t *testing.T) {
	f := newFocusFixture(t, initialHosts)

	session, err := f.ctrl.Cancel(context.Background())

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.Equal(t, initialHosts, f.hostsContent(t))
	assert.Zero(t, f.countEvents(t, domain.ActivityFocusCancelled))
}

func TestStart_AlreadyActive(t *testing.T) {
	f := newFocusFixture(t, initialHosts)
	first, err := f.ctrl.Start(context.Background(), pomodoroPlan("x.com"))
	require.NoError(t, err)

	_, err = f.ctrl.Start(context.Background(), pomodoroPlan("y.com"))

	assert.ErrorIs(t, err, domain.ErrSessionAlreadyActive)
	assert.Equal(t, first.Session.ID, f.ctrl.Current().ID)
	assert.Equal(t, []string{"x.com"}, f.managed(t))
}

func TestStart_AfterCancelStartsNewSession(t *testing.T) {
	f := newFocusFixture(t, initialHosts)
	first, err := f.ctrl.Start(context.Background(), pomodoroPlan("x.com"))
	require.NoError(t, err)
	_, err = f.ctrl.Cancel(context.Background())
	require.NoError(t, err)

	second, err := f.ctrl.Start(context.Background(), pomodoroPlan("y.com"))

	require.NoError(t, err)
	assert.NotEqual(t, first.Session.ID, second.Session.ID)
	assert.Equal(t, []string{"y.com"}, f.managed(t))
}

func TestStart_InvalidPlan(t *testing.T) {
	f := newFocusFixture(t, initialHosts)

	_, err := f.ctrl.Start(context.Background(), domain.FocusPlan{WorkDuration: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = f.ctrl.Start(context.Background(), pomodoroPlan("not a domain"))
	assert.ErrorIs(t, err, domain.ErrInvalidDomain)

	assert.Nil(t, f.ctrl.Current())
	assert.Equal(t, initialHosts, f.hostsContent(t))
}

func TestStart_NormalizesDomains(t *testing.T) {
	f := newFocusFixture(t, initialHosts)

	result, err := f.ctrl.Start(context.Background(), pomodoroPlan("https://Reddit.com/r/golang", "reddit.com", "X.com."))

	require.NoError(t, err)
	assert.Equal(t, []string{"reddit.com", "x.com"}, result.Session.Domains)
	assert.Equal(t, []string{"reddit.com", "x.com"}, f.managed(t))
}

func TestStart_TimerOnly(t *testing.T) {
	f := newFocusFixture(t, initialHosts)

	result, err := f.ctrl.Start(context.Background(), pomodoroPlan())

	require.NoError(t, err)
	assert.NoError(t, result.BlockingErr)
	assert.False(t, result.Session.BlockingActive)
	assert.False(t, result.Session.BlockingInert)
	assert.Equal(t, initialHosts, f.hostsContent(t))
}

func TestStart_ElevationUnavailable(t *testing.T) {
	dir := t.TempDir()
	hostsPath := filepath.Join(dir, "hosts")
	require.NoError(t, os.WriteFile(hostsPath, []byte(initialHosts), 0644))

	elevation := portsmocks.NewMockElevationChecker(t)
	elevation.EXPECT().IsElevated().Return(false)
	notifier := servicesmocks.NewMockPhaseNotifier(t)
	notifier.EXPECT().NotifyTransition(mock.MatchedBy(func(tr domain.PhaseTransition) bool {
		return tr.To == domain.PhaseWorking && errors.Is(tr.BlockingErr, domain.ErrBlockListUnavailable)
	})).Once()
	notifier.EXPECT().NotifyTransition(mock.Anything).Maybe()

	ctrl := NewFocusController(
		hosts.NewFile(hostsPath, "127.0.0.1", nil),
		elevation,
		activitylog.NewCSVLogger(filepath.Join(dir, "activity.csv")),
		notifier,
	)

	result, err := ctrl.Start(context.Background(), pomodoroPlan("instagram.com"))

	require.NoError(t, err)
	assert.False(t, ctrl.ElevationAvailable())
	assert.Equal(t, domain.PhaseWorking, result.Session.Phase)
	assert.True(t, result.Session.BlockingInert)
	assert.False(t, result.Session.BlockingActive)
	assert.ErrorIs(t, result.BlockingErr, domain.ErrBlockListUnavailable)

	data, err := os.ReadFile(hostsPath)
	require.NoError(t, err)
	assert.Equal(t, initialHosts, string(data))

	// Inert sessions still time themselves and stay quiet about blocking
	tr, err := ctrl.Tick(result.Session.PhaseDeadline())
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, domain.PhaseOnBreak, tr.To)
	assert.NoError(t, tr.BlockingErr)
}

func TestStart_BlockListFailureStillStartsTimer(t *testing.T) {
	blockList := portsmocks.NewMockHostBlockList(t)
	elevation := portsmocks.NewMockElevationChecker(t)
	activityLog := portsmocks.NewMockActivityLogger(t)

	elevation.EXPECT().IsElevated().Return(true)
	blockList.EXPECT().AddEntries([]string{"x.com"}).Return(errors.New("hosts file is locked"))
	blockList.EXPECT().RemoveEntries([]string{"x.com"}).Return(nil)
	activityLog.EXPECT().Append(mock.Anything).Return(nil)

	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	ctrl := NewFocusController(blockList, elevation, activityLog, nil, WithClock(func() time.Time { return start }))

	result, err := ctrl.Start(context.Background(), pomodoroPlan("x.com"))

	require.NoError(t, err)
	assert.ErrorIs(t, result.BlockingErr, domain.ErrBlockListUnavailable)
	assert.ErrorContains(t, result.BlockingErr, "hosts file is locked")
	assert.Equal(t, domain.PhaseWorking, result.Session.Phase)
	assert.False(t, result.Session.BlockingActive)
	assert.False(t, result.Session.BlockingInert)

	tr, err := ctrl.Tick(start.Add(25 * time.Minute))
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, domain.PhaseOnBreak, tr.To)
}

func TestCancel_RemoveFailureStillCancels(t *testing.T) {
	blockList := portsmocks.NewMockHostBlockList(t)
	elevation := portsmocks.NewMockElevationChecker(t)
	activityLog := portsmocks.NewMockActivityLogger(t)

	elevation.EXPECT().IsElevated().Return(true)
	blockList.EXPECT().AddEntries([]string{"x.com"}).Return(nil)
	blockList.EXPECT().RemoveEntries([]string{"x.com"}).Return(errors.New("disk full"))
	activityLog.EXPECT().Append(mock.Anything).Return(nil)

	ctrl := NewFocusController(blockList, elevation, activityLog, nil)
	_, err := ctrl.Start(context.Background(), pomodoroPlan("x.com"))
	require.NoError(t, err)

	session, err := ctrl.Cancel(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBlockListUnavailable)
	require.NotNil(t, session)
	assert.Equal(t, domain.PhaseCancelled, session.Phase)
	assert.Nil(t, ctrl.Current())
}

func TestActivityLogFailure_DoesNotAffectSession(t *testing.T) {
	blockList := portsmocks.NewMockHostBlockList(t)
	elevation := portsmocks.NewMockElevationChecker(t)
	activityLog := portsmocks.NewMockActivityLogger(t)

	elevation.EXPECT().IsElevated().Return(true)
	blockList.EXPECT().AddEntries(mock.Anything).Return(nil)
	blockList.EXPECT().RemoveEntries(mock.Anything).Return(nil)
	activityLog.EXPECT().Append(mock.Anything).Return(errors.New("disk full"))

	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	ctrl := NewFocusController(blockList, elevation, activityLog, nil, WithClock(func() time.Time { return start }))

	result, err := ctrl.Start(context.Background(), pomodoroPlan("x.com"))
	require.NoError(t, err)
	assert.NoError(t, result.BlockingErr)

	tr, err := ctrl.Tick(start.Add(25 * time.Minute))

	assert.Error(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, domain.PhaseOnBreak, tr.To)
	assert.Equal(t, domain.PhaseOnBreak, ctrl.Current().Phase)
}

func TestReconcileOnStartup_RemovesStaleEntries(t *testing.T) {
	content := initialHosts +
		"127.0.0.1 reddit.com # perry-managed\n" +
		"0.0.0.0 ads.example.com\n" +
		"127.0.0.1 www.reddit.com # perry-managed\n"
	f := newFocusFixture(t, content)

	result, err := f.ctrl.ReconcileOnStartup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"reddit.com", "www.reddit.com"}, result.Removed)
	assert.Empty(t, f.managed(t))
	assert.Equal(t, initialHosts+"0.0.0.0 ads.example.com\n", f.hostsContent(t))
	assert.Equal(t, 1, f.countEvents(t, domain.ActivityBlockingReconciled))
}

func TestReconcileOnStartup_NothingStale(t *testing.T) {
	f := newFocusFixture(t, initialHosts)

	result, err := f.ctrl.ReconcileOnStartup(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Removed)
	assert.Equal(t, initialHosts, f.hostsContent(t))
	assert.Zero(t, f.countEvents(t, domain.ActivityBlockingReconciled))
}

func TestReconcileOnStartup_KeepsActiveSessionEntries(t *testing.T) {
	f := newFocusFixture(t, initialHosts+"127.0.0.1 old.com # perry-managed\n")
	_, err := f.ctrl.Start(context.Background(), pomodoroPlan("x.com"))
	require.NoError(t, err)

	result, err := f.ctrl.ReconcileOnStartup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"old.com"}, result.Removed)
	assert.Equal(t, []string{"x.com"}, f.managed(t))
}

func TestReconcileOnStartup_ListFailure(t *testing.T) {
	blockList := portsmocks.NewMockHostBlockList(t)
	elevation := portsmocks.NewMockElevationChecker(t)
	elevation.EXPECT().IsElevated().Return(true)
	blockList.EXPECT().ListManagedEntries().Return(nil, errors.New("permission denied"))

	ctrl := NewFocusController(blockList, elevation, portsmocks.NewMockActivityLogger(t), nil)

	_, err := ctrl.ReconcileOnStartup(context.Background())

	assert.ErrorIs(t, err, domain.ErrBlockListUnavailable)
}

func TestCancelRacingTick_LeavesConsistentState(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newFocusFixture(t, initialHosts)
		_, err := f.ctrl.Start(context.Background(), pomodoroPlan("x.com"))
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			f.ctrl.Tick(f.start.Add(25 * time.Minute))
		}()
		go func() {
			defer wg.Done()
			f.ctrl.Cancel(context.Background())
		}()
		wg.Wait()

		// Either order ends with the session cancelled and the block list clear
		assert.Nil(t, f.ctrl.Current())
		assert.Empty(t, f.managed(t))
	}
}

func TestNotifier_ReceivesEveryTransition(t *testing.T) {
	dir := t.TempDir()
	hostsPath := filepath.Join(dir, "hosts")
	require.NoError(t, os.WriteFile(hostsPath, []byte(initialHosts), 0644))

	var got []domain.Phase
	notifier := servicesmocks.NewMockPhaseNotifier(t)
	notifier.EXPECT().NotifyTransition(mock.Anything).Run(func(tr domain.PhaseTransition) {
		got = append(got, tr.To)
	})

	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	ctrl := NewFocusController(
		hosts.NewFile(hostsPath, "127.0.0.1", nil),
		hosts.NewElevationChecker(hostsPath),
		activitylog.NewCSVLogger(filepath.Join(dir, "activity.csv")),
		notifier,
		WithClock(func() time.Time { return start }),
		WithIDGenerator(func() string { return "fixed-id" }),
	)

	result, err := ctrl.Start(context.Background(), pomodoroPlan("x.com"))
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", result.Session.ID)
	_, err = ctrl.Tick(start.Add(25 * time.Minute))
	require.NoError(t, err)
	_, err = ctrl.Cancel(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Phase{domain.PhaseWorking, domain.PhaseOnBreak, domain.PhaseCancelled}, got)
}
