package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/hookhub/hookhub/internal/adapters/catalog"
	"github.com/hookhub/hookhub/internal/adapters/storage"
	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/ports"
	"github.com/hookhub/hookhub/internal/services"
)

// Container holds the dependencies shared by commands. The catalog is
// loaded on first use so settings commands never touch it.
type Container struct {
	catalog  *services.CatalogService
	settings *config.Settings
	sources  []string
	stores   []ports.HookStore
}

// NewContainer creates a container. sources overrides the catalogs listed
// in settings.
func NewContainer(settings *config.Settings, sources []string) *Container {
	if settings == nil {
		settings = &config.Settings{}
	}
	return &Container{
		settings: settings,
		sources:  sources,
	}
}

// Catalog loads and merges every configured source once
func (c *Container) Catalog(ctx context.Context) (*services.CatalogService, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}

	sources, err := c.hookSources()
	if err != nil {
		return nil, err
	}

	svc, err := services.LoadCatalog(ctx, sources...)
	if err != nil {
		return nil, err
	}

	c.catalog = svc
	return svc, nil
}

// hookSources resolves where hooks come from, in order of preference:
// --source files, settings catalogs, the imported database, the bundled
// catalog.
func (c *Container) hookSources() ([]ports.HookSource, error) {
	paths := c.sources
	if len(paths) == 0 {
		paths = c.settings.Catalogs
	}

	if len(paths) > 0 {
		sources := make([]ports.HookSource, 0, len(paths))
		for _, path := range paths {
			src, err := catalog.NewFileSource(config.ExpandPath(path))
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
		}
		logging.Logger.Debug("Using catalog files", "paths", paths)
		return sources, nil
	}

	dbPath := config.GetCatalogDBPath()
	if storage.Exists(dbPath) {
		store, err := storage.NewSQLiteCatalog(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog database: %w", err)
		}
		c.stores = append(c.stores, store)
		logging.Logger.Debug("Using imported catalog", "path", dbPath)
		return []ports.HookSource{store}, nil
	}

	logging.Logger.Debug("Using embedded catalog")
	return []ports.HookSource{catalog.NewEmbeddedSource()}, nil
}

// Close closes every store the container opened
func (c *Container) Close() error {
	var errs []error
	for _, store := range c.stores {
		if err := store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.stores = nil
	return errors.Join(errs...)
}
