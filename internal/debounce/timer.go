// Package debounce coalesces bursts of input into a single commit that fires
// once the input has been quiet for a fixed delay.
//
// A Timer never runs goroutines of its own. Schedule returns a tea.Cmd that
// delivers a FiredMsg after the delay; the owning model hands that message
// back to Fire, which reports whether it is still the latest one. Older
// messages carry a stale generation and are dropped, which is how a pending
// commit gets cancelled.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period before a search query is committed
const DefaultDelay = 300 * time.Millisecond

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// FiredMsg is delivered when a scheduled commit's delay elapses
type FiredMsg struct {
	ID         int
	Generation int
	Value      string
}

// Timer tracks at most one pending commit
type Timer struct {
	delay      time.Duration
	generation int
	id         int
	pending    bool
	value      string
}

// New creates an idle timer. A non-positive delay falls back to DefaultDelay.
func New(delay time.Duration) *Timer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Timer{
		delay: delay,
		id:    nextID(),
	}
}

// Delay returns the configured quiet period
func (t *Timer) Delay() time.Duration {
	return t.delay
}

// ID identifies this timer's messages
func (t *Timer) ID() int {
	return t.id
}

// Pending reports whether a commit is waiting to fire
func (t *Timer) Pending() bool {
	return t.pending
}

// Schedule replaces any pending commit with value and restarts the delay
func (t *Timer) Schedule(value string) tea.Cmd {
	t.generation++
	t.pending = true
	t.value = value

	id, gen := t.id, t.generation
	return tea.Tick(t.delay, func(time.Time) tea.Msg {
		return FiredMsg{ID: id, Generation: gen, Value: value}
	})
}

// Fire consumes a FiredMsg. It returns the committed value and true only
// when msg is the latest scheduled commit of this timer.
func (t *Timer) Fire(msg FiredMsg) (string, bool) {
	if msg.ID != t.id || !t.pending || msg.Generation != t.generation {
		return "", false
	}
	t.pending = false
	value := t.value
	t.value = ""
	return value, true
}

// Cancel drops any pending commit. In-flight ticks become stale.
func (t *Timer) Cancel() {
	t.generation++
	t.pending = false
	t.value = ""
}
