//go:build unix

package harness

import (
	"bytes"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// ANSI escape sequences stripped before matching screen output
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// TUISession drives the interactive browser through a pseudo-terminal
type TUISession struct {
	cmd    *exec.Cmd
	exited chan struct{}
	pty    *os.File
	tb     testing.TB

	mu  sync.Mutex
	buf bytes.Buffer
}

// StartTUI launches hookhub with args in a 120x40 pty. The process is
// killed when the test ends if it is still running.
func StartTUI(tb testing.TB, env *TestEnvironment, args ...string) *TUISession {
	tb.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(env.Environ(), "TERM=xterm-256color", "LANG=C", "LC_ALL=C")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		tb.Fatalf("Failed to start TUI: %v", err)
	}

	s := &TUISession{
		cmd:    cmd,
		exited: make(chan struct{}),
		pty:    ptmx,
		tb:     tb,
	}
	go s.read()
	go func() {
		_ = cmd.Wait()
		close(s.exited)
	}()

	tb.Cleanup(func() {
		select {
		case <-s.exited:
		default:
			_ = cmd.Process.Kill()
			<-s.exited
		}
		ptmx.Close()
	})

	return s
}

func (s *TUISession) read() {
	chunk := make([]byte, 8192)
	for {
		n, err := s.pty.Read(chunk)
		if n > 0 {
			s.mu.Lock()
			s.buf.Write(chunk[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Output returns everything rendered so far with escape sequences removed
func (s *TUISession) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ansiRe.ReplaceAllString(s.buf.String(), "")
}

// Send writes raw keystrokes to the terminal
func (s *TUISession) Send(keys string) {
	s.tb.Helper()
	if _, err := s.pty.Write([]byte(keys)); err != nil {
		s.tb.Fatalf("Failed to send keys: %v", err)
	}
}

// ClearOutput forgets what was rendered so later waits only see new frames
func (s *TUISession) ClearOutput() {
	s.mu.Lock()
	s.buf.Reset()
	s.mu.Unlock()
}

// WaitFor polls the screen until text appears or timeout elapses
func (s *TUISession) WaitFor(text string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.Output(), text) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// WaitExit waits for the process to exit and returns its exit code
func (s *TUISession) WaitExit(timeout time.Duration) (int, bool) {
	select {
	case <-s.exited:
		return s.cmd.ProcessState.ExitCode(), true
	case <-time.After(timeout):
		return -1, false
	}
}
