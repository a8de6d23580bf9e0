package integration_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vinyaaggarwal/Perry/test/integration/harness"
)

func TestStartCancelFromStdin(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithInput(t, env, "c\n", "start", "--work", "25", "--break", "5")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Focus started")
	harness.AssertStdoutContains(t, result, "Cancelled")
	harness.AssertHostsRestored(t, env)

	log, err := os.ReadFile(env.ActivityLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(log), "focus_session_started")
	assert.Contains(t, string(log), "website_blocking_enabled")
	assert.Contains(t, string(log), "website_blocking_disabled")
	assert.Contains(t, string(log), "focus_session_cancelled")
}

func TestStartWithoutBlocking(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithInput(t, env, "c\n", "start", "--no-block")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "0 sites blocked")
	log, err := os.ReadFile(env.ActivityLogPath())
	require.NoError(t, err)
	assert.NotContains(t, string(log), "website_blocking_enabled")
}

func TestStartInvalidPreset(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithInput(t, env, "", "start", "--preset", "marathon")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "unknown preset")
	harness.AssertHostsRestored(t, env)
}

func TestStartReconcilesStaleBlocking(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteHosts(harness.InitialHosts + "127.0.0.1 stale.example.com # perry-managed\n")

	result := harness.RunCommandWithInput(t, env, "c\n", "start", "--no-block")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Removed 1 stale blocked sites")
	harness.AssertNoManagedEntries(t, env)
}
