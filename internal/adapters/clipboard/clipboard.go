package clipboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/ports"
)

var (
	_ ports.Clipboard = (*System)(nil)
	_ ports.Clipboard = (*OSC52)(nil)
)

// System writes to the local clipboard (xclip, pbcopy, ...)
type System struct{}

// NewSystem returns the local clipboard
func NewSystem() *System {
	return &System{}
}

// WriteAll implements ports.Clipboard
func (s *System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logging.Logger.Debug("Copied to clipboard", "length", len(text))
	return nil
}

// MaxOSC52Bytes is the largest text sent through OSC52. Terminals and
// multiplexers silently drop longer sequences.
const MaxOSC52Bytes = 74994

// OSC52 asks the user's terminal to set its clipboard. Used for SSH
// sessions, where the server clipboard is not the user's.
type OSC52 struct {
	mode osc52.Mode
	w    io.Writer
}

// NewOSC52 writes escape sequences to w for a terminal reporting term as
// its TERM. tmux and GNU screen get the sequence wrapped for passthrough.
func NewOSC52(w io.Writer, term string) *OSC52 {
	return &OSC52{mode: osc52Mode(term), w: w}
}

func osc52Mode(term string) osc52.Mode {
	switch {
	case strings.HasPrefix(term, "tmux"):
		return osc52.TmuxMode
	case strings.HasPrefix(term, "screen"):
		return osc52.ScreenMode
	default:
		return osc52.DefaultMode
	}
}

// WriteAll implements ports.Clipboard
func (o *OSC52) WriteAll(text string) error {
	if len(text) > MaxOSC52Bytes {
		return fmt.Errorf("failed to copy to clipboard: %d bytes exceeds the terminal limit of %d", len(text), MaxOSC52Bytes)
	}

	seq := osc52.New(text).Mode(o.mode).Limit(MaxOSC52Bytes)
	if _, err := seq.WriteTo(o.w); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logging.Logger.Debug("Copied to clipboard via OSC52", "length", len(text), "mode", o.mode)
	return nil
}
