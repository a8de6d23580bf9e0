package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vinyaaggarwal/Perry/internal/config"
	"github.com/Vinyaaggarwal/Perry/internal/domain"
)

func intPtr(i int) *int { return &i }

func noFlags() PlanFlags {
	return PlanFlags{Break: -1}
}

func TestResolvePlan_Defaults(t *testing.T) {
	resolved, err := resolvePlan(noFlags(), nil, true, []string{"reddit.com", "www.reddit.com"})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPresetName, resolved.presetName)
	assert.Equal(t, 25*time.Minute, resolved.plan.WorkDuration)
	assert.Equal(t, 5*time.Minute, resolved.plan.BreakDuration)
	assert.Equal(t, 1, resolved.plan.Cycles)
	assert.Equal(t, []string{"reddit.com", "www.reddit.com"}, resolved.plan.Domains)
}

func TestResolvePlan_SettingsRefineDefaultPreset(t *testing.T) {
	settings := &config.Settings{
		BreakMinutes: intPtr(0),
		Cycles:       intPtr(3),
		WorkMinutes:  intPtr(50),
	}

	resolved, err := resolvePlan(noFlags(), settings, true, nil)

	require.NoError(t, err)
	assert.Equal(t, 50*time.Minute, resolved.plan.WorkDuration)
	assert.Zero(t, resolved.plan.BreakDuration)
	assert.Equal(t, 3, resolved.plan.Cycles)
}

func TestResolvePlan_ExplicitPresetIgnoresSettingsDurations(t *testing.T) {
	flags := noFlags()
	flags.Preset = "study"

	resolved, err := resolvePlan(flags, &config.Settings{WorkMinutes: intPtr(50)}, true, nil)

	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, resolved.plan.WorkDuration)
	assert.Equal(t, 10*time.Minute, resolved.plan.BreakDuration)
	assert.True(t, flags.explicit())
}

func TestResolvePlan_FlagsWin(t *testing.T) {
	flags := PlanFlags{Break: 0, Cycles: 2, Notes: "thesis", Work: 40}

	resolved, err := resolvePlan(flags, &config.Settings{Cycles: intPtr(5), WorkMinutes: intPtr(50)}, true, nil)

	require.NoError(t, err)
	assert.Equal(t, 40*time.Minute, resolved.plan.WorkDuration)
	assert.Zero(t, resolved.plan.BreakDuration)
	assert.Equal(t, 2, resolved.plan.Cycles)
	assert.Equal(t, "thesis", resolved.plan.Notes)
}

func TestResolvePlan_ExtraSitesExpanded(t *testing.T) {
	flags := noFlags()
	flags.Site = []string{"https://News.Example.com/path"}
	settings := &config.Settings{ExtraSites: config.StringArray{"twitch.tv"}}

	resolved, err := resolvePlan(flags, settings, true, []string{"reddit.com"})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"news.example.com",
		"reddit.com",
		"twitch.tv",
		"www.news.example.com",
		"www.reddit.com",
		"www.twitch.tv",
	}, resolved.plan.Domains)
}

func TestResolvePlan_BlockingToggles(t *testing.T) {
	flags := noFlags()
	flags.NoBlock = true
	resolved, err := resolvePlan(flags, nil, true, []string{"reddit.com"})
	require.NoError(t, err)
	assert.Empty(t, resolved.plan.Domains)
	assert.NotEmpty(t, resolved.blocklist)

	resolved, err = resolvePlan(noFlags(), nil, false, []string{"reddit.com"})
	require.NoError(t, err)
	assert.Empty(t, resolved.plan.Domains)

	flags = noFlags()
	flags.Block = true
	resolved, err = resolvePlan(flags, nil, false, []string{"reddit.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"reddit.com", "www.reddit.com"}, resolved.plan.Domains)
}

func TestResolvePlan_Errors(t *testing.T) {
	flags := noFlags()
	flags.Preset = "marathon"
	_, err := resolvePlan(flags, nil, true, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownPreset)

	flags = noFlags()
	flags.Site = []string{"localhost"}
	_, err = resolvePlan(flags, nil, true, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDomain)
}
