package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Source      []string         `help:"Catalog file (JSON or TOML) to read instead of the configured catalogs; repeatable" short:"s" type:"path"`

	Run        RunCmd        `cmd:"" help:"Browse the hook catalog (default)" default:"1"`
	List       ListCmd       `cmd:"list" help:"List hooks, optionally filtered by category and search query"`
	Categories CategoriesCmd `cmd:"categories" help:"List the categories present in the catalog"`
	Show       ShowCmd       `cmd:"show" help:"Show every detail of one hook"`
	Serve      ServeCmd      `cmd:"serve" help:"Serve the catalog browser over SSH"`
	Catalog    CatalogCmd    `cmd:"catalog" help:"Manage the catalog database (import, export, info)"`
	Settings   SettingsCmd   `cmd:"settings" help:"Manage settings (meta, keys, theme)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Settings only apply when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Share the debug settings and log file with anything we spawn
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Created after logging so adapters log to the right place
	c.Container = NewContainer(c.settings, c.Source)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
