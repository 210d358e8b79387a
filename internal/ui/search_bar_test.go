package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookhub/hookhub/internal/debounce"
	"github.com/hookhub/hookhub/internal/theme"
)

const testDelay = 5 * time.Millisecond

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drain runs cmd and every command it batches, returning the messages
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func newFocusedSearchBar(t *testing.T) *SearchBar {
	t.Helper()
	bar := NewSearchBar(theme.NewStyles(nil, theme.DarkPalette), testDelay)
	bar.input.Cursor.SetMode(cursor.CursorStatic)
	bar.Focus()
	t.Cleanup(bar.Close)
	return bar
}

func typeText(bar *SearchBar, text string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range text {
		cmds = append(cmds, bar.Update(runeKey(r)))
	}
	return cmds
}

func TestSearchBar_DefaultDelay(t *testing.T) {
	bar := NewSearchBar(theme.NewStyles(nil, theme.LightPalette), 0)
	assert.Equal(t, 300*time.Millisecond, bar.timer.Delay())
	assert.Equal(t, debounce.DefaultDelay, bar.timer.Delay())
}

func TestSearchBar_BurstCommitsOnce(t *testing.T) {
	bar := newFocusedSearchBar(t)

	cmds := typeText(bar, "for")
	assert.Equal(t, "for", bar.Value())
	assert.True(t, bar.Pending())
	assert.Equal(t, "", bar.Committed())

	var committed []string
	for _, cmd := range cmds {
		for _, msg := range drain(cmd) {
			fired, ok := msg.(debounce.FiredMsg)
			if !ok {
				continue
			}
			for _, out := range drain(bar.Update(fired)) {
				if q, ok := out.(QueryCommittedMsg); ok {
					committed = append(committed, q.Query)
				}
			}
		}
	}

	assert.Equal(t, []string{"for"}, committed, "only the last keystroke's tick commits")
	assert.Equal(t, "for", bar.Committed())
	assert.False(t, bar.Pending())
}

func TestSearchBar_LongPasteKeepsWholeQuery(t *testing.T) {
	bar := newFocusedSearchBar(t)
	query := strings.Repeat("format on save ", 40)

	bar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(query), Paste: true})

	assert.Equal(t, query, bar.Value())
	assert.True(t, bar.Pending())
}

func TestSearchBar_ClearCommitsImmediately(t *testing.T) {
	bar := newFocusedSearchBar(t)
	cmds := typeText(bar, "ab")

	msgs := drain(bar.Clear())
	require.Len(t, msgs, 1)
	assert.Equal(t, QueryCommittedMsg{Query: ""}, msgs[0])
	assert.Equal(t, "", bar.Value())
	assert.False(t, bar.Pending())

	for _, cmd := range cmds {
		for _, msg := range drain(cmd) {
			if fired, ok := msg.(debounce.FiredMsg); ok {
				assert.Nil(t, bar.Update(fired), "ticks scheduled before clear are stale")
			}
		}
	}
}

func TestSearchBar_Sync(t *testing.T) {
	bar := newFocusedSearchBar(t)
	cmds := typeText(bar, "x")

	bar.Sync("lint")

	assert.Equal(t, "lint", bar.Value())
	assert.Equal(t, "lint", bar.Committed())
	assert.False(t, bar.Pending())
	for _, msg := range drain(cmds[0]) {
		if fired, ok := msg.(debounce.FiredMsg); ok {
			assert.Nil(t, bar.Update(fired))
		}
	}
}

func TestSearchBar_CloseDropsPending(t *testing.T) {
	bar := newFocusedSearchBar(t)
	cmds := typeText(bar, "q")

	bar.Close()

	assert.False(t, bar.Pending())
	for _, msg := range drain(cmds[0]) {
		if fired, ok := msg.(debounce.FiredMsg); ok {
			assert.Nil(t, bar.Update(fired))
		}
	}
}

func TestSearchBar_IgnoresKeysWhenBlurred(t *testing.T) {
	bar := NewSearchBar(theme.NewStyles(nil, theme.DarkPalette), testDelay)

	assert.Nil(t, bar.Update(runeKey('a')))
	assert.Equal(t, "", bar.Value())
	assert.False(t, bar.Pending())
}

func TestSearchBar_CursorMovesDoNotSchedule(t *testing.T) {
	bar := newFocusedSearchBar(t)
	typeText(bar, "ab")
	bar.Sync(bar.Value())

	bar.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, bar.Pending(), "value unchanged, nothing to commit")
}

func TestSearchBar_ViewShowsPlaceholder(t *testing.T) {
	bar := NewSearchBar(theme.NewStyles(nil, theme.DarkPalette), testDelay)
	view := stripAnsi(bar.View(80))
	assert.Contains(t, view, "earch hooks by name")
}

