package server

import (
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/hookhub/hookhub/internal/adapters/clipboard"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/ui"
)

type contextKey string

const (
	modelKey     contextKey = "hookhub.model"
	sessionIDKey contextKey = "hookhub.session_id"
)

// sessionMiddleware tags each session with an id and closes its model
// once the program has exited
func (s *Server) sessionMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			sessionID := uuid.New().String()
			sess.Context().SetValue(sessionIDKey, sessionID)
			startTime := time.Now()

			next(sess)

			if model, ok := sess.Context().Value(modelKey).(*ui.Model); ok {
				model.Close()
			}
			logging.Logger.Info("SSH session ended",
				"session_id", sessionID,
				"user", sess.User(),
				"duration", time.Since(startTime).String())
		}
	}
}

// sessionOutput serializes writes to an SSH session. The renderer and
// the OSC52 clipboard share it so a copy never lands inside a frame.
type sessionOutput struct {
	mu sync.Mutex
	w  io.Writer
}

func (o *sessionOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// programHandler creates a browser for each SSH session. Models share the
// catalog and nothing else. Sessions use an emulated PTY, so the program
// reads from and writes to the session directly.
func (s *Server) programHandler(sess ssh.Session) *tea.Program {
	pty, _, _ := sess.Pty()
	sessionID, _ := sess.Context().Value(sessionIDKey).(string)

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	out := &sessionOutput{w: sess}
	model := ui.NewModel(ui.Options{
		Catalog:         s.cfg.Catalog,
		Clipboard:       clipboard.NewOSC52(out, pty.Term),
		ErrorClearDelay: s.cfg.ErrorClearDelay,
		Keys:            s.cfg.Keys,
		Renderer:        bubbletea.MakeRenderer(sess),
		Theme:           s.cfg.Theme,
	})
	sess.Context().SetValue(modelKey, model)

	return tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(sess),
		tea.WithOutput(out))
}
