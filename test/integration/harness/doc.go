// Package harness provides utilities for integration testing the perry CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - PERRY_HOME: Isolated per test (temp directory)
//   - PERRY_HOSTS_FILE: A writable temp hosts file, so no privileges are needed
//   - PERRY_NO_NOTIFY, PERRY_NO_SOUND: Set to keep tests silent
//   - PERRY_DEBUG: Disabled to reduce noise
package harness
