package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected KeyBindingValue
		wantErr  bool
	}{
		{name: "single string", input: `"a"`, expected: KeyBindingValue{"a"}},
		{name: "array", input: `["up", "k"]`, expected: KeyBindingValue{"up", "k"}},
		{name: "empty string", input: `""`, expected: nil},
		{name: "number is invalid", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kv KeyBindingValue
			err := json.Unmarshal([]byte(tt.input), &kv)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kv)
		})
	}
}

func TestKeyBindingValue_MarshalJSON(t *testing.T) {
	single, err := json.Marshal(KeyBindingValue{"y"})
	require.NoError(t, err)
	assert.JSONEq(t, `"y"`, string(single))

	multi, err := json.Marshal(KeyBindingValue{"up", "k"})
	require.NoError(t, err)
	assert.JSONEq(t, `["up","k"]`, string(multi))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	validNames := []string{"copy_url", "help", "quit"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{name: "nil config", config: nil},
		{name: "valid config", config: KeyBindingsConfig{"copy_url": {"c"}, "help": {"H", "?"}}},
		{name: "empty value uses default", config: KeyBindingsConfig{"help": {}}},
		{name: "unknown name", config: KeyBindingsConfig{"archive": {"a"}}, wantErr: "unknown key binding 'archive'"},
		{name: "empty key", config: KeyBindingsConfig{"quit": {""}}, wantErr: "contains empty value"},
		{name: "duplicate key", config: KeyBindingsConfig{"quit": {"x"}, "help": {"x"}}, wantErr: "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(validNames)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStringArray_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringArray
	}{
		{name: "array", input: `["a.json", "b.toml"]`, expected: StringArray{"a.json", "b.toml"}},
		{name: "comma separated", input: `"a.json, b.toml ,"`, expected: StringArray{"a.json", "b.toml"}},
		{name: "empty string", input: `""`, expected: StringArray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sa StringArray
			require.NoError(t, json.Unmarshal([]byte(tt.input), &sa))
			assert.Equal(t, tt.expected, sa)
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{not json"), 0644))

	_, err := LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestLoadSettings_ExpandsPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	userHome, err := os.UserHomeDir()
	require.NoError(t, err)

	content := `{
		"catalogs": "~/hooks.json, /srv/team.toml",
		"authorized_keys": "~/.ssh/authorized_keys",
		"theme": "dark",
		"debug": true,
		"error_clear_delay": 3
	}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, StringArray{filepath.Join(userHome, "hooks.json"), "/srv/team.toml"}, settings.Catalogs)
	assert.Equal(t, filepath.Join(userHome, ".ssh", "authorized_keys"), settings.AuthorizedKeys)
	assert.Equal(t, "dark", settings.Theme)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.ErrorClearDelay)
	assert.Equal(t, 3, *settings.ErrorClearDelay)
}

func TestSaveSettings_RoundTripsThroughLoad(t *testing.T) {
	home := filepath.Join(t.TempDir(), "fresh")
	t.Setenv(EnvHome, home)

	err := SaveSettings(&Settings{
		Theme: "light",
		Keys:  KeyBindingsConfig{"help": {"H"}},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(home, "settings.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"help": "H"`)

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.Theme)
	assert.Equal(t, KeyBindingValue{"H"}, loaded.Keys["help"])
}

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	assert.Equal(t, home, GetHookHubHome())
	assert.Equal(t, filepath.Join(home, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(home, "catalog.db"), GetCatalogDBPath())
	assert.Equal(t, filepath.Join(home, "catalog.lock"), GetCatalogLockPath())
	assert.Equal(t, filepath.Join(home, "ssh"), GetSSHDir())
}

func TestExpandPath(t *testing.T) {
	userHome, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", userHome},
		{"~/hooks.json", filepath.Join(userHome, "hooks.json")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{
		"authorized_keys", "catalogs", "debug", "dev", "error_clear_delay",
		"keys", "max_log_files", "server_host", "server_port", "theme",
	} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, false, example["dev"])
	assert.Equal(t, DefaultErrorClearDelay, example["error_clear_delay"])
	assert.Equal(t, DefaultServerPort, example["server_port"])
	assert.IsType(t, []string{}, example["catalogs"])
	assert.IsType(t, map[string]any{}, example["keys"])
}
