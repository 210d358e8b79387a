package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hookhub/hookhub/internal/adapters/browser"
	"github.com/hookhub/hookhub/internal/adapters/clipboard"
	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/theme"
	"github.com/hookhub/hookhub/internal/ui"
)

// EnvTheme overrides the theme from settings.json
const EnvTheme = "HOOKHUB_THEME"

// RunCmd starts the TUI application
type RunCmd struct {
	Category        string `help:"Category selected at start" short:"c"`
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Query           string `help:"Search query applied at start" short:"q"`
	Theme           string `help:"Theme: light, dark or system" env:"HOOKHUB_THEME"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if r.ErrorClearDelay == config.DefaultErrorClearDelay && cli.settings.ErrorClearDelay != nil {
			r.ErrorClearDelay = *cli.settings.ErrorClearDelay
		}
		if !r.Dev && cli.settings.Dev != nil && *cli.settings.Dev {
			r.Dev = true
		}
	}

	mode, err := resolveTheme(r.Theme, cli.settings)
	if err != nil {
		return err
	}

	keys, err := validatedKeys(cli.settings)
	if err != nil {
		return err
	}

	catalogService, err := cli.Container.Catalog(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	logging.Logger.Info("Starting HookHub TUI",
		"hooks", len(catalogService.Hooks()),
		"theme", mode,
		"category", r.Category,
		"query", r.Query)

	model := ui.NewModel(ui.Options{
		Catalog:         catalogService,
		Category:        r.Category,
		Clipboard:       clipboard.NewSystem(),
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		Keys:            keys,
		Opener:          browser.NewOpener(),
		Query:           r.Query,
		Theme:           mode,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// resolveTheme applies flag/env > settings > system
func resolveTheme(flagValue string, settings *config.Settings) (theme.Mode, error) {
	value := flagValue
	if value == "" && settings != nil {
		if _, hasEnv := os.LookupEnv(EnvTheme); !hasEnv {
			value = settings.Theme
		}
	}
	return theme.ParseMode(value)
}

// validatedKeys returns the custom key bindings from settings, if valid
func validatedKeys(settings *config.Settings) (config.KeyBindingsConfig, error) {
	if settings == nil || settings.Keys == nil {
		return nil, nil
	}
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return settings.Keys, nil
}
