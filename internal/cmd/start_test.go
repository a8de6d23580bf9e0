package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vinyaaggarwal/Perry/internal/adapters/activitylog"
	"github.com/Vinyaaggarwal/Perry/internal/adapters/hosts"
	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/Vinyaaggarwal/Perry/internal/services"
	servicesmocks "github.com/Vinyaaggarwal/Perry/internal/services/mocks"
)

// syncBuffer guards output written from the errgroup goroutines
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type runnerFixture struct {
	hostsFile *hosts.File
	out       *syncBuffer
	runner    *headlessRunner
}

func newRunnerFixture(t *testing.T, in io.Reader) *runnerFixture {
	t.Helper()

	dir := t.TempDir()
	hostsPath := filepath.Join(dir, "hosts")
	require.NoError(t, os.WriteFile(hostsPath, []byte("127.0.0.1 localhost\n"), 0644))

	notifier := servicesmocks.NewMockPhaseNotifier(t)
	notifier.EXPECT().NotifyTransition(mock.Anything).Maybe()

	hostsFile := hosts.NewFile(hostsPath, "127.0.0.1", nil)
	ctrl := services.NewFocusController(
		hostsFile,
		hosts.NewElevationChecker(hostsPath),
		activitylog.NewCSVLogger(filepath.Join(dir, "activity.csv")),
		notifier,
	)

	out := &syncBuffer{}
	return &runnerFixture{
		hostsFile: hostsFile,
		out:       out,
		runner: &headlessRunner{
			controller:   ctrl,
			in:           in,
			out:          out,
			tickInterval: 5 * time.Millisecond,
		},
	}
}

func shortPlan() domain.FocusPlan {
	return domain.FocusPlan{
		BreakDuration: 20 * time.Millisecond,
		Cycles:        2,
		Domains:       []string{"example.com"},
		WorkDuration:  20 * time.Millisecond,
	}
}

func TestHeadlessRunner_RunsToCompletion(t *testing.T) {
	f := newRunnerFixture(t, strings.NewReader(""))

	final, err := f.runner.Run(context.Background(), shortPlan())

	require.NoError(t, err)
	require.NotNil(t, final)
	assert.Equal(t, domain.PhaseCompleted, final.Phase)
	assert.Equal(t, 2, final.Cycle)
	entries, err := f.hostsFile.ListManagedEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, f.out.String(), "Break (cycle 1)")
	assert.Contains(t, f.out.String(), "Completed (cycle 2)")
}

func TestHeadlessRunner_CancelFromStdin(t *testing.T) {
	f := newRunnerFixture(t, strings.NewReader("hello\nc\n"))
	plan := shortPlan()
	plan.WorkDuration = time.Hour

	final, err := f.runner.Run(context.Background(), plan)

	require.NoError(t, err)
	require.NotNil(t, final)
	assert.Equal(t, domain.PhaseCancelled, final.Phase)
	entries, err := f.hostsFile.ListManagedEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHeadlessRunner_InterruptCancels(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	f := newRunnerFixture(t, pr)
	plan := shortPlan()
	plan.WorkDuration = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)

	final, err := f.runner.Run(ctx, plan)

	require.NoError(t, err)
	require.NotNil(t, final)
	assert.Equal(t, domain.PhaseCancelled, final.Phase)
	assert.Nil(t, f.runner.controller.Current())
}

func TestHeadlessRunner_StartError(t *testing.T) {
	f := newRunnerFixture(t, strings.NewReader(""))

	_, err := f.runner.Run(context.Background(), domain.FocusPlan{})

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}
