package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vinyaaggarwal/Perry/test/integration/harness"
)

func TestActivitySummaryEmpty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "activity", "summary")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No activity yet.")
}

func TestActivitySummaryAfterSession(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AssertSuccess(t, harness.RunCommandWithInput(t, env, "c\n", "start"))

	result := harness.RunCommand(t, env, "activity", "summary", "--format", "json")

	harness.AssertSuccess(t, result)
	var summary map[string]any
	harness.AssertValidJSON(t, result, &summary)
	assert.EqualValues(t, 1, summary["StartedSessions"])
	assert.EqualValues(t, 1, summary["CancelledSessions"])
}

func TestActivityExport(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "sites", "add", "news.example.com"))
	dst := filepath.Join(t.TempDir(), "export.csv")

	result := harness.RunCommand(t, env, "activity", "export", dst)

	harness.AssertSuccess(t, result)
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(content), "timestamp,date,time,activity_type")
	assert.Contains(t, string(content), "blocked_site_added")
}

func TestActivityPruneRejectsZeroDays(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "activity", "prune", "--days", "0")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "days must be at least 1")
}
