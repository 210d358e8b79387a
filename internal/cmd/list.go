package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"

	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/services"
)

// ListCmd lists hooks matching a category and query
type ListCmd struct {
	Category string `help:"Only list hooks in this category" short:"c" default:"All"`
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Query    string `help:"Case-insensitive search over name, description and repository" short:"q"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	catalogService, err := cli.Container.Catalog(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := checkCategory(catalogService, l.Category); err != nil {
		return err
	}

	hooks := catalogService.Filter(l.Category, l.Query)

	if l.Format == "json" {
		data, err := json.MarshalIndent(hooks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	printHookTable(hooks, interactive)
	return nil
}

// printHookTable prints one row per hook. The result count is only shown
// on a terminal so piped output stays one hook per line.
func printHookTable(hooks []domain.Hook, interactive bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tCategory\tStars\tRepository")
	if interactive {
		fmt.Fprintln(w, "──\t────\t────────\t─────\t──────────")
	}
	for _, hook := range hooks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", hook.ID, hook.Name, hook.Category, hook.StarCount(), hook.Repository())
	}
	w.Flush()

	if interactive {
		fmt.Println()
		fmt.Println(domain.ResultCountMessage(len(hooks)))
	}
}

// checkCategory rejects names that are neither in the catalog nor a known
// category. A known category with no hooks yields an empty list.
func checkCategory(catalogService *services.CatalogService, category string) error {
	categories := catalogService.Categories()
	if slices.Contains(categories, category) || domain.Category(category).IsKnown() {
		return nil
	}
	return fmt.Errorf("unknown category %q (available: %s)", category, strings.Join(categories, ", "))
}
