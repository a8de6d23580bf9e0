package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_TerminalAndActive(t *testing.T) {
	tests := []struct {
		phase    Phase
		terminal bool
		active   bool
	}{
		{PhaseIdle, false, false},
		{PhaseWorking, false, true},
		{PhaseOnBreak, false, true},
		{PhaseCompleted, true, false},
		{PhaseCancelled, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.phase.IsTerminal())
			assert.Equal(t, tt.active, tt.phase.IsActive())
		})
	}
}

func TestFocusPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		plan    FocusPlan
		wantErr bool
	}{
		{"valid", FocusPlan{WorkDuration: 25 * time.Minute, BreakDuration: 5 * time.Minute, Cycles: 1}, false},
		{"no break", FocusPlan{WorkDuration: time.Minute}, false},
		{"zero work", FocusPlan{WorkDuration: 0}, true},
		{"negative work", FocusPlan{WorkDuration: -time.Second}, true},
		{"negative break", FocusPlan{WorkDuration: time.Minute, BreakDuration: -time.Second}, true},
		{"negative cycles", FocusPlan{WorkDuration: time.Minute, Cycles: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDuration))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFocusPlan_PlannedDuration(t *testing.T) {
	plan := FocusPlan{WorkDuration: 25 * time.Minute, BreakDuration: 5 * time.Minute, Cycles: 4}
	assert.Equal(t, 2*time.Hour, plan.PlannedDuration())

	single := FocusPlan{WorkDuration: 15 * time.Minute}
	assert.Equal(t, 15*time.Minute, single.PlannedDuration())
}

func TestFocusSession_RemainingAndProgress(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	s := &FocusSession{
		Phase:          PhaseWorking,
		PhaseStartedAt: start,
		StartedAt:      start,
		WorkDuration:   20 * time.Minute,
		BreakDuration:  5 * time.Minute,
	}

	assert.Equal(t, start.Add(20*time.Minute), s.PhaseDeadline())
	assert.Equal(t, 15*time.Minute, s.Remaining(start.Add(5*time.Minute)))
	assert.Equal(t, time.Duration(0), s.Remaining(start.Add(time.Hour)))
	assert.InDelta(t, 0.25, s.PhaseProgress(start.Add(5*time.Minute)), 0.0001)
	assert.Equal(t, 0.0, s.PhaseProgress(start.Add(-time.Minute)))
	assert.Equal(t, 1.0, s.PhaseProgress(start.Add(time.Hour)))

	s.Phase = PhaseOnBreak
	assert.Equal(t, start.Add(5*time.Minute), s.PhaseDeadline())
}

func TestFocusSession_ElapsedStopsAtEnd(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	s := &FocusSession{
		EndedAt:   start.Add(10 * time.Minute),
		Phase:     PhaseCancelled,
		StartedAt: start,
	}

	assert.Equal(t, 10*time.Minute, s.Elapsed(start.Add(time.Hour)))
	assert.Equal(t, time.Duration(0), s.Remaining(start.Add(time.Minute)))
}

func TestFocusSession_CloneDoesNotShareDomains(t *testing.T) {
	s := &FocusSession{Domains: []string{"a.com"}}
	c := s.Clone()
	c.Domains[0] = "b.com"

	assert.Equal(t, "a.com", s.Domains[0])
	assert.Nil(t, (*FocusSession)(nil).Clone())
}

func TestPhaseTransition_Event(t *testing.T) {
	tests := []struct {
		to       Phase
		expected string
	}{
		{PhaseWorking, "work"},
		{PhaseOnBreak, "break"},
		{PhaseCompleted, "complete"},
		{PhaseCancelled, "cancel"},
		{PhaseIdle, "unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.expected, PhaseTransition{To: tt.to}.Event())
		})
	}
}

func TestLookupPreset(t *testing.T) {
	p, err := LookupPreset("pomodoro")
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, p.WorkDuration)
	assert.Equal(t, 5*time.Minute, p.BreakDuration)

	_, err = LookupPreset("marathon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))

	assert.Equal(t, []string{"pomodoro", "quick", "study"}, PresetNames())
}
