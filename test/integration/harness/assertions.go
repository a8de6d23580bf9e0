package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// managedMarker tags lines Perry writes to the hosts file
const managedMarker = "# perry-managed"

// AssertSuccess verifies perry exited 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
}

// AssertFailure verifies perry exited non-zero.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"perry succeeded unexpectedly.\nStdout: %s", result.Stdout)
}

// AssertExitCode verifies the exact exit code.
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"exit code %d, want %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, expected, result.Stdout, result.Stderr)
}

// AssertStdoutContains checks stdout for a substring.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout: %s", result.Stdout)
}

// AssertStdoutNotContains checks stdout lacks a substring.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "stdout: %s", result.Stdout)
}

// AssertStderrContains checks stderr for a substring.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr: %s", result.Stderr)
}

// AssertStderrEmpty checks nothing was written to stderr.
func AssertStderrEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stderr), "stderr: %s", result.Stderr)
}

// AssertValidJSON unmarshals stdout into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target),
		"invalid JSON on stdout: %s", result.Stdout)
}

// AssertJSONContains checks one top-level key of a JSON object on stdout.
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q", key)
}

// AssertNoManagedEntries verifies the hosts file carries no Perry lines.
func AssertNoManagedEntries(tb testing.TB, env *TestEnvironment) {
	tb.Helper()
	hosts := env.ReadHosts()
	assert.NotContains(tb, hosts, managedMarker, "hosts file still blocks sites:\n%s", hosts)
}

// AssertHostsRestored verifies the hosts file matches InitialHosts byte for byte.
func AssertHostsRestored(tb testing.TB, env *TestEnvironment) {
	tb.Helper()
	assert.Equal(tb, InitialHosts, env.ReadHosts(), "hosts file was not restored")
}
