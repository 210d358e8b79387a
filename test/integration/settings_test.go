package integration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hookhub/hookhub/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "Example settings.json:")
				harness.AssertStdoutContains(t, result, "catalogs")
				harness.AssertStdoutContains(t, result, "theme")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				assert.Contains(t, output, "settings_file")
				assert.Contains(t, output, "format")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestSettingsKeys(t *testing.T) {
	tests := []struct {
		name         string
		setup        [][]string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name: "list groups bindings by section",
			args: []string{"settings", "keys", "list"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Navigation\n")
				harness.AssertStdoutContains(t, result, "Hook\n")
				harness.AssertStdoutContains(t, result, "Application\n")
				harness.AssertStdoutContains(t, result, "copy_url")
				harness.AssertStdoutContains(t, result, "h, ?")
				harness.AssertStdoutContains(t, result, "hookhub settings keys set")
				assert.Less(t,
					strings.Index(result.Stdout, "Navigation"),
					strings.Index(result.Stdout, "Application"))
			},
		},
		{
			name:  "list json includes custom binding",
			setup: [][]string{{"settings", "keys", "set", "copy_url", "c"}},
			args:  []string{"settings", "keys", "list", "--format", "json"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var bindings []struct {
					Custom   []string `json:"custom"`
					Defaults []string `json:"defaults"`
					Keys     []string `json:"keys"`
					Name     string   `json:"name"`
					Section  string   `json:"section"`
				}
				harness.AssertValidJSON(t, result, &bindings)

				byName := make(map[string]int, len(bindings))
				for i, b := range bindings {
					byName[b.Name] = i
				}
				copyURL := bindings[byName["copy_url"]]
				assert.Equal(t, "Hook", copyURL.Section)
				assert.Equal(t, []string{"y"}, copyURL.Defaults)
				assert.Equal(t, []string{"c"}, copyURL.Custom)
				assert.Equal(t, []string{"c"}, copyURL.Keys)

				help := bindings[byName["help"]]
				assert.Nil(t, help.Custom)
				assert.Equal(t, []string{"h", "?"}, help.Keys)
			},
		},
		{
			name: "set writes settings.json",
			args: []string{"settings", "keys", "set", "up", "up, k ,w"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "up (select previous hook) is now bound to up, k, w")
				keys := env.ReadSettings()["keys"].(map[string]any)
				assert.Equal(t, []any{"up", "k", "w"}, keys["up"])
			},
		},
		{
			name:  "reset drops the custom binding",
			setup: [][]string{{"settings", "keys", "set", "copy_url", "c"}},
			args:  []string{"settings", "keys", "reset", "copy_url"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "copy_url restored to y")
				assert.NotContains(t, env.ReadSettings(), "keys")
			},
		},
		{
			name: "reset without a custom binding",
			args: []string{"settings", "keys", "reset", "help"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "help already uses its default binding: h, ?")
			},
		},
		{
			name:         "unknown key name",
			args:         []string{"settings", "keys", "set", "archive", "a"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown key 'archive'")
			},
		},
		{
			name:         "conflicting custom bindings",
			setup:        [][]string{{"settings", "keys", "set", "copy_url", "z"}},
			args:         []string{"settings", "keys", "set", "help", "z"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "conflict")
			},
		},
		{
			name:         "empty value",
			args:         []string{"settings", "keys", "set", "help", " , "},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "value cannot be empty")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			for _, args := range tt.setup {
				harness.AssertSuccess(t, harness.RunCommand(t, env, args...))
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestSettingsTheme(t *testing.T) {
	t.Run("shows system when unset", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		result := harness.RunCommand(t, env, "settings", "theme")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Theme: system")
	})

	t.Run("set then show", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "settings", "theme", "DARK")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Theme set to dark")
		assert.Equal(t, "dark", env.ReadSettings()["theme"])

		shown := harness.RunCommand(t, env, "settings", "theme")
		harness.AssertSuccess(t, shown)
		harness.AssertStdoutContains(t, shown, "Theme: dark")
	})

	t.Run("keeps other settings", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(map[string]any{"server_port": "2222"})

		harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "theme", "light"))

		settings := env.ReadSettings()
		assert.Equal(t, "light", settings["theme"])
		assert.Equal(t, "2222", settings["server_port"])
	})

	t.Run("rejects unknown theme", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		result := harness.RunCommand(t, env, "settings", "theme", "solarized")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "unknown theme")
	})
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	result := harness.RunCommand(t, env, "--version")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "hookhub dev")
}
