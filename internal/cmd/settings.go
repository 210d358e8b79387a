package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/hookhub/hookhub/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys  SettingsKeysCmd  `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta  SettingsMetaCmd  `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Theme SettingsThemeCmd `cmd:"theme" help:"Show or set the saved theme"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	names := make([]string, 0, len(example))
	for name := range example {
		names = append(names, name)
	}
	slices.Sort(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		var valueStr string
		switch v := example[name].(type) {
		case []string, map[string]any, map[string][]string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		case string:
			valueStr = v
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", name, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure hookhub.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}
