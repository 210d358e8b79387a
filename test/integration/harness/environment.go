package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own HOOKHUB_HOME.
type TestEnvironment struct {
	HookHubHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp HOOKHUB_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		HookHubHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out HOOKHUB_* variables and sets HOOKHUB_HOME to the temp
// directory with debug logging disabled.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "HOOKHUB_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"HOOKHUB_HOME="+e.HookHubHome,
		"HOOKHUB_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the imported catalog database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.HookHubHome, "catalog.db")
}

// SettingsPath returns the path to settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.HookHubHome, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteFile writes content to name inside a fresh temp directory and
// returns its path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()

	path := filepath.Join(e.tb.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// WriteSettings writes settings.json into HOOKHUB_HOME.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(e.SettingsPath(), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// ReadSettings returns settings.json decoded as a map.
func (e *TestEnvironment) ReadSettings() map[string]any {
	e.tb.Helper()

	data, err := os.ReadFile(e.SettingsPath())
	if err != nil {
		e.tb.Fatalf("Failed to read settings: %v", err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		e.tb.Fatalf("Invalid settings.json: %v", err)
	}
	return settings
}
