package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/server"
)

// ServeCmd serves the TUI to SSH clients
type ServeCmd struct {
	AuthorizedKeys  string `help:"authorized_keys file; when set only listed keys may connect" type:"path"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Host            string `help:"Address to listen on" default:"localhost"`
	Port            string `help:"Port to listen on" default:"23234"`
	Theme           string `help:"Theme for every session: light, dark or system" env:"HOOKHUB_THEME"`
}

// Run starts the SSH server and blocks until interrupted
func (s *ServeCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if s.Host == config.DefaultServerHost && cli.settings.ServerHost != "" {
			s.Host = cli.settings.ServerHost
		}
		if s.Port == config.DefaultServerPort && cli.settings.ServerPort != "" {
			s.Port = cli.settings.ServerPort
		}
		if s.AuthorizedKeys == "" {
			s.AuthorizedKeys = cli.settings.AuthorizedKeys
		}
		if s.ErrorClearDelay == config.DefaultErrorClearDelay && cli.settings.ErrorClearDelay != nil {
			s.ErrorClearDelay = *cli.settings.ErrorClearDelay
		}
	}

	if s.AuthorizedKeys != "" {
		if _, err := os.Stat(s.AuthorizedKeys); err != nil {
			return fmt.Errorf("authorized keys file: %w", err)
		}
	}

	mode, err := resolveTheme(s.Theme, cli.settings)
	if err != nil {
		return err
	}

	keys, err := validatedKeys(cli.settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogService, err := cli.Container.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeys:  s.AuthorizedKeys,
		Catalog:         catalogService,
		ErrorClearDelay: time.Duration(s.ErrorClearDelay) * time.Second,
		Host:            s.Host,
		Keys:            keys,
		Port:            s.Port,
		Theme:           mode,
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting SSH server", "address", srv.Address(), "hooks", len(catalogService.Hooks()))
	fmt.Printf("Serving %d hooks on ssh://%s (Ctrl+C to stop)\n", len(catalogService.Hooks()), srv.Address())

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("SSH server failed: %w", err)
	}

	fmt.Println("Server stopped")
	return nil
}
