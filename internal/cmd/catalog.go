package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gofrs/flock"

	"github.com/hookhub/hookhub/internal/adapters/catalog"
	"github.com/hookhub/hookhub/internal/adapters/storage"
	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/logging"
)

const (
	importLockTimeout = 10 * time.Second
	importLockRetry   = 100 * time.Millisecond
)

// CatalogCmd manages the catalog database
type CatalogCmd struct {
	Export CatalogExportCmd `cmd:"export" help:"Write the current catalog to a file or stdout"`
	Import CatalogImportCmd `cmd:"import" help:"Replace the catalog database with the hooks from a file"`
	Info   CatalogInfoCmd   `cmd:"info" help:"Show where the catalog comes from" default:"1"`
}

// CatalogImportCmd loads a catalog file into the database
type CatalogImportCmd struct {
	File string `arg:"" help:"Catalog file (.json or .toml)" type:"existingfile"`
}

// Run executes the import command
func (c *CatalogImportCmd) Run(cli *CLI) error {
	ctx := context.Background()

	src, err := catalog.NewFileSource(c.File)
	if err != nil {
		return err
	}
	hooks, err := src.Load(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.GetHookHubHome(), 0755); err != nil {
		return fmt.Errorf("failed to create hookhub home: %w", err)
	}

	// Imports replace the whole table; two at once would interleave
	lock := flock.New(config.GetCatalogLockPath())
	lockCtx, cancel := context.WithTimeout(ctx, importLockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, importLockRetry)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to lock catalog: %w", err)
	}
	if !locked {
		return fmt.Errorf("another catalog import is running (lock: %s)", config.GetCatalogLockPath())
	}
	defer lock.Unlock()

	dbPath := config.GetCatalogDBPath()
	store, err := storage.NewSQLiteCatalog(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer store.Close()

	source, err := filepath.Abs(c.File)
	if err != nil {
		source = c.File
	}
	if err := store.ReplaceFrom(ctx, source, hooks); err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	logging.Logger.Info("Catalog imported", "file", source, "hooks", len(hooks), "db", dbPath)
	fmt.Printf("Imported %d hooks from %s\n", len(hooks), c.File)
	return nil
}

// CatalogExportCmd writes the catalog as JSON or TOML
type CatalogExportCmd struct {
	Format string `help:"json or toml; defaults to the output extension, or json on stdout"`
	Output string `help:"File to write instead of stdout" short:"o" type:"path"`
}

// Run executes the export command
func (c *CatalogExportCmd) Run(cli *CLI) error {
	format, err := c.resolveFormat()
	if err != nil {
		return err
	}

	catalogService, err := cli.Container.Catalog(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	hooks := catalogService.Hooks()

	if c.Output == "" {
		return catalog.Encode(os.Stdout, format, hooks)
	}

	if err := writeCatalogFile(c.Output, format, hooks); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported %d hooks to %s\n", len(hooks), c.Output)
	return nil
}

// createFile opens export targets; replaced in tests
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeCatalogFile encodes hooks into path. A failed close is an error:
// the file may be incomplete.
func writeCatalogFile(path string, format catalog.Format, hooks []domain.Hook) error {
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := catalog.Encode(f, format, hooks); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (c *CatalogExportCmd) resolveFormat() (catalog.Format, error) {
	if c.Format != "" {
		return catalog.ParseFormat(c.Format)
	}
	if c.Output != "" {
		return catalog.FormatFromPath(c.Output)
	}
	return catalog.FormatJSON, nil
}

// CatalogInfoCmd reports sources and import history
type CatalogInfoCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type sourceInfo struct {
	Duplicates int    `json:"duplicates"`
	Loaded     int    `json:"loaded"`
	Name       string `json:"name"`
}

type databaseInfo struct {
	Hooks      int64      `json:"hooks"`
	ImportedAt *time.Time `json:"imported_at,omitempty"`
	Path       string     `json:"path"`
	Source     string     `json:"source,omitempty"`
}

type catalogInfo struct {
	Categories []string      `json:"categories"`
	Database   *databaseInfo `json:"database,omitempty"`
	Hooks      int           `json:"hooks"`
	Sources    []sourceInfo  `json:"sources"`
}

// Run executes the info command
func (c *CatalogInfoCmd) Run(cli *CLI) error {
	ctx := context.Background()

	catalogService, err := cli.Container.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	info := catalogInfo{
		Categories: catalogService.Categories()[1:],
		Hooks:      len(catalogService.Hooks()),
	}
	for _, summary := range catalogService.Sources() {
		info.Sources = append(info.Sources, sourceInfo{
			Duplicates: summary.Duplicates,
			Loaded:     summary.Loaded,
			Name:       summary.Name,
		})
	}

	db, err := readDatabaseInfo(ctx)
	if err != nil {
		return err
	}
	info.Database = db

	if c.Format == "json" {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Hooks: %d\n", info.Hooks)
	fmt.Printf("Categories: %s\n\n", strings.Join(info.Categories, ", "))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Source\tLoaded\tDuplicates")
	fmt.Fprintln(w, "──────\t──────\t──────────")
	for _, src := range info.Sources {
		fmt.Fprintf(w, "%s\t%d\t%d\n", src.Name, src.Loaded, src.Duplicates)
	}
	w.Flush()

	fmt.Println()
	if db == nil {
		fmt.Printf("Database: not imported (%s)\n", config.GetCatalogDBPath())
		fmt.Println("Use 'hookhub catalog import <file>' to import a catalog.")
		return nil
	}
	fmt.Printf("Database: %s (%d hooks)\n", db.Path, db.Hooks)
	if db.ImportedAt != nil {
		fmt.Printf("Last import: %s from %s\n", db.ImportedAt.Local().Format(time.DateTime), db.Source)
	}
	return nil
}

// readDatabaseInfo returns nil when nothing was ever imported
func readDatabaseInfo(ctx context.Context) (*databaseInfo, error) {
	dbPath := config.GetCatalogDBPath()
	if !storage.Exists(dbPath) {
		return nil, nil
	}

	store, err := storage.NewSQLiteCatalog(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer store.Close()

	count, err := store.Count(ctx)
	if err != nil {
		return nil, err
	}
	info := &databaseInfo{Hooks: count, Path: dbPath}

	record, err := store.LastImport(ctx)
	if err != nil {
		return nil, err
	}
	if record != nil {
		info.ImportedAt = &record.ImportedAt
		info.Source = record.Source
	}
	return info, nil
}
