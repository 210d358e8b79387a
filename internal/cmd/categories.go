package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/hookhub/hookhub/internal/domain"
)

// CategoriesCmd lists the categories present in the catalog
type CategoriesCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type categoryCount struct {
	Hooks int    `json:"hooks"`
	Name  string `json:"name"`
}

// Run executes the categories command
func (c *CategoriesCmd) Run(cli *CLI) error {
	catalogService, err := cli.Container.Catalog(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	counts := make([]categoryCount, 0, len(catalogService.Categories()))
	for _, name := range catalogService.Categories() {
		counts = append(counts, categoryCount{
			Hooks: len(catalogService.Filter(name, "")),
			Name:  name,
		})
	}

	if c.Format == "json" {
		data, err := json.MarshalIndent(counts, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Category\tHooks")
	for _, count := range counts {
		name := count.Name
		if name != domain.AllCategories && !domain.Category(name).IsKnown() {
			name += " *"
		}
		fmt.Fprintf(w, "%s\t%d\n", name, count.Hooks)
	}
	return w.Flush()
}
