package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/ui"
)

// SettingsKeysCmd manages the browser's key bindings
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List key bindings grouped by section" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Restore the default binding of a key"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Bind one or more keys to an action"`
}

// SettingsKeysListCmd lists every action with its active keys
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd binds keys to an action
type SettingsKeysSetCmd struct {
	Name  string `arg:"" help:"Action name (e.g. copy_url, open_url, search)"`
	Value string `arg:"" help:"Comma-separated keys (e.g. y or up,k)"`
}

// SettingsKeysResetCmd drops a custom binding
type SettingsKeysResetCmd struct {
	Name string `arg:"" help:"Action name"`
}

// keyBinding is one action as shown by `settings keys list`
type keyBinding struct {
	Custom   []string `json:"custom,omitempty"`
	Defaults []string `json:"defaults"`
	Help     string   `json:"help"`
	Keys     []string `json:"keys"`
	Name     string   `json:"name"`
	Section  string   `json:"section"`
}

// collectKeyBindings returns every action in section order, applying
// custom bindings on top of the defaults
func collectKeyBindings(custom config.KeyBindingsConfig) []keyBinding {
	var bindings []keyBinding
	for _, section := range ui.KeySections {
		for _, def := range ui.GetKeyDefinitionsBySection(section) {
			b := keyBinding{
				Defaults: def.Defaults,
				Help:     def.Help,
				Keys:     def.Defaults,
				Name:     def.Name,
				Section:  string(section),
			}
			if keys := custom[def.Name]; len(keys) > 0 {
				b.Custom = []string(keys)
				b.Keys = b.Custom
			}
			bindings = append(bindings, b)
		}
	}
	return bindings
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}
	bindings := collectKeyBindings(custom)

	if s.Format == "json" {
		data, err := json.MarshalIndent(bindings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printKeyBindings(bindings)
	return nil
}

func printKeyBindings(bindings []keyBinding) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	section := ""
	for _, b := range bindings {
		if b.Section != section {
			if section != "" {
				fmt.Fprintln(w)
			}
			section = b.Section
			fmt.Fprintf(w, "%s\n", section)
		}

		keys := strings.Join(b.Keys, ", ")
		if b.Custom != nil {
			keys += " (default: " + strings.Join(b.Defaults, ", ") + ")"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", b.Name, keys, b.Help)
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("Custom bindings live in %s.\n", config.GetSettingsPath())
	fmt.Println("Use 'hookhub settings keys set <name> <keys>' to change one.")
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	def, err := lookupKeyDefinition(s.Name)
	if err != nil {
		return err
	}

	keys := parseKeyValues(s.Value)
	if len(keys) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[def.Name] = config.KeyBindingValue(keys)

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Key binding changed", "name", def.Name, "keys", keys)
	fmt.Printf("%s (%s) is now bound to %s\n", def.Name, def.Help, strings.Join(keys, ", "))
	return nil
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	def, err := lookupKeyDefinition(s.Name)
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if _, ok := settings.Keys[def.Name]; !ok {
		fmt.Printf("%s already uses its default binding: %s\n", def.Name, strings.Join(def.Defaults, ", "))
		return nil
	}

	delete(settings.Keys, def.Name)
	if len(settings.Keys) == 0 {
		settings.Keys = nil
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Key binding reset", "name", def.Name)
	fmt.Printf("%s restored to %s\n", def.Name, strings.Join(def.Defaults, ", "))
	return nil
}

func lookupKeyDefinition(name string) (*ui.KeyDefinition, error) {
	def := ui.GetKeyDefinition(name)
	if def == nil {
		return nil, fmt.Errorf("unknown key '%s'. Valid keys: %s", name, strings.Join(ui.GetValidKeyNames(), ", "))
	}
	return def, nil
}

// parseKeyValues splits "up, k" into its non-empty keys
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
