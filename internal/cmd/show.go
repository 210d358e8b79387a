package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hookhub/hookhub/internal/domain"
)

// ShowCmd shows one hook
type ShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"ID of the hook to show"`
}

// Run executes the show command
func (s *ShowCmd) Run(cli *CLI) error {
	catalogService, err := cli.Container.Catalog(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	hook, err := catalogService.Find(s.ID)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(hook, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printHook(hook)
	return nil
}

func printHook(hook domain.Hook) {
	fmt.Printf("Hook: %s\n", hook.Name)
	fmt.Printf("ID: %s\n", hook.ID)
	fmt.Printf("Category: %s\n", hook.Category)
	fmt.Printf("Repository: %s\n", hook.Repository())
	fmt.Printf("URL: %s\n", hook.RepoURL)
	fmt.Printf("Stars: %d\n", hook.StarCount())

	description := hook.FullDescription
	if description == "" {
		description = hook.Description
	}
	if description != "" {
		fmt.Printf("\n%s\n", description)
	}

	optional := [][2]string{
		{"Version", hook.Metadata.Version},
		{"License", hook.Metadata.License},
		{"Tags", strings.Join(hook.Metadata.Tags, ", ")},
		{"Platforms", strings.Join(hook.Compatibility.Platforms, ", ")},
		{"Author", hook.Author.Name},
		{"Last Updated", hook.LastUpdated},
	}
	printedHeader := false
	for _, field := range optional {
		if field[1] == "" {
			continue
		}
		if !printedHeader {
			fmt.Println()
			printedHeader = true
		}
		fmt.Printf("%s: %s\n", field[0], field[1])
	}

	if deps := hook.Compatibility.Dependencies; len(deps) > 0 {
		fmt.Printf("\nDependencies:\n")
		for _, dep := range deps {
			required := "optional"
			if dep.Required {
				required = "required"
			}
			fmt.Printf("  %s (%s)\n", dep.Name, required)
		}
	}
}
