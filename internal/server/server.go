package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"

	"github.com/hookhub/hookhub/internal/config"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/services"
	"github.com/hookhub/hookhub/internal/theme"
)

const shutdownTimeout = 30 * time.Second

// Config holds everything a server needs. Every SSH session browses the
// same Catalog.
type Config struct {
	AuthorizedKeys  string // authorized_keys path; empty allows anonymous access
	Catalog         *services.CatalogService
	ErrorClearDelay time.Duration
	Host            string
	Keys            config.KeyBindingsConfig
	Port            string
	Theme           theme.Mode
}

// Server serves the catalog browser over SSH
type Server struct {
	address    string
	cfg        Config
	wishServer *ssh.Server
}

// NewServer creates the SSH server. The host key is generated under
// $HOOKHUB_HOME/ssh on first use.
func NewServer(cfg Config) (*Server, error) {
	s := &Server{
		address: net.JoinHostPort(cfg.Host, cfg.Port),
		cfg:     cfg,
	}

	sshDir := config.GetSSHDir()
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}
	hostKeyPath := filepath.Join(sshDir, "id_ed25519")

	options := []ssh.Option{
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(hostKeyPath),
	}

	if cfg.AuthorizedKeys != "" {
		options = append(options, wish.WithPublicKeyAuth(s.authorizePublicKey))
		logging.Logger.Info("SSH public key authentication enabled", "authorized_keys", cfg.AuthorizedKeys)
	} else {
		logging.Logger.Info("SSH server allows anonymous access")
	}

	// Middleware executes in reverse order (last to first)
	options = append(options, wish.WithMiddleware(
		bubbletea.MiddlewareWithProgramHandler(s.programHandler, termenv.Ascii),
		s.sessionMiddleware(),
		activeterm.Middleware(), // Require PTY
		wishlogging.Middleware(),
	))

	wishServer, err := wish.NewServer(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the configured listen address
func (s *Server) Address() string {
	return s.address
}

// Start listens on the configured address and serves until ctx is done
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logging.Logger.Info("Starting SSH server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server error: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
