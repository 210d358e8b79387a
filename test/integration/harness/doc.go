// Package harness provides utilities for integration testing the hookhub CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - HOOKHUB_HOME: Isolated per test (temp directory)
//   - HOOKHUB_DEBUG: Disabled to reduce noise
//   - HOOKHUB_THEME: Cleared so settings.json decides
package harness
