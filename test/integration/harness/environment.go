package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// InitialHosts is the content every test hosts file starts with
const InitialHosts = "127.0.0.1 localhost\n::1 localhost\n"

// TestEnvironment provides an isolated test environment with its own PERRY_HOME
// and hosts file.
type TestEnvironment struct {
	HostsFile string
	PerryHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment in temp directories.
// They are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	perryHome := filepath.Join(root, "home")
	if err := os.MkdirAll(perryHome, 0755); err != nil {
		tb.Fatalf("Failed to create PERRY_HOME: %v", err)
	}

	hostsFile := filepath.Join(root, "hosts")
	if err := os.WriteFile(hostsFile, []byte(InitialHosts), 0644); err != nil {
		tb.Fatalf("Failed to create hosts file: %v", err)
	}

	return &TestEnvironment{
		HostsFile: hostsFile,
		PerryHome: perryHome,
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out PERRY_* variables and points Perry at the temp directories.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+5+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "PERRY_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"PERRY_HOME="+e.PerryHome,
		"PERRY_HOSTS_FILE="+e.HostsFile,
		"PERRY_NO_NOTIFY=true",
		"PERRY_NO_SOUND=true",
		"PERRY_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// ActivityLogPath returns the default activity log inside PERRY_HOME.
func (e *TestEnvironment) ActivityLogPath() string {
	return filepath.Join(e.PerryHome, "user_activity_log.csv")
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.PerryHome, "perry.db")
}

// ReadHosts returns the current hosts file content.
func (e *TestEnvironment) ReadHosts() string {
	e.tb.Helper()
	data, err := os.ReadFile(e.HostsFile)
	if err != nil {
		e.tb.Fatalf("Failed to read hosts file: %v", err)
	}
	return string(data)
}

// WriteHosts replaces the hosts file content.
func (e *TestEnvironment) WriteHosts(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.HostsFile, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write hosts file: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
