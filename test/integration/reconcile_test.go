package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vinyaaggarwal/Perry/test/integration/harness"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name      string
		hosts     string
		wantHosts string
		wantOut   string
	}{
		{
			name:      "nothing to do",
			hosts:     harness.InitialHosts,
			wantHosts: harness.InitialHosts,
			wantOut:   "No stale blocking found.",
		},
		{
			name: "removes only managed lines",
			hosts: harness.InitialHosts +
				"127.0.0.1 reddit.com # perry-managed\n" +
				"10.0.0.5 intranet.local\n" +
				"127.0.0.1 www.reddit.com # perry-managed\n",
			wantHosts: harness.InitialHosts + "10.0.0.5 intranet.local\n",
			wantOut:   "Removed 2 stale blocked sites",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.WriteHosts(tt.hosts)

			result := harness.RunCommand(t, env, "reconcile")

			harness.AssertSuccess(t, result)
			harness.AssertStderrEmpty(t, result)
			harness.AssertStdoutContains(t, result, tt.wantOut)
			assert.Equal(t, tt.wantHosts, env.ReadHosts())
			harness.AssertNoManagedEntries(t, env)
		})
	}
}
