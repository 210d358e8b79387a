package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/theme"
	"github.com/hookhub/hookhub/internal/ui"
)

// SettingsThemeCmd shows or saves the theme used when no flag or env var is set
type SettingsThemeCmd struct {
	Mode string `arg:"" optional:"" help:"light, dark or system; prompts when omitted on a terminal"`
}

// Run executes the theme command
func (s *SettingsThemeCmd) Run(cli *CLI) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	current, err := theme.ParseMode(settings.Theme)
	if err != nil {
		logging.Logger.Warn("Ignoring invalid saved theme", "theme", settings.Theme, "error", err)
		current = theme.ModeSystem
	}

	mode := current
	switch {
	case s.Mode != "":
		mode, err = theme.ParseMode(s.Mode)
		if err != nil {
			return err
		}
	case isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()):
		form := huh.NewForm(huh.NewGroup(ui.NewThemeSelect(&mode)))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("theme prompt failed: %w", err)
		}
	default:
		fmt.Printf("Theme: %s\n", current)
		return nil
	}

	settings.Theme = mode.String()
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Theme saved", "theme", mode)
	fmt.Printf("Theme set to %s\n", mode)
	return nil
}
