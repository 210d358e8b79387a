package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookhub/hookhub/internal/theme"
)

func newTestPalette() *CommandPalette {
	return NewCommandPalette("block-rm", NewKeyMap(nil), theme.NewStyles(nil, theme.DarkPalette))
}

func paletteNames(cp *CommandPalette) []string {
	names := make([]string, 0, len(cp.actions))
	for _, a := range cp.actions {
		names = append(names, a.Name)
	}
	return names
}

func TestCommandPalette_ListsPaletteActions(t *testing.T) {
	cp := newTestPalette()
	assert.Len(t, cp.actions, len(GetPaletteActions()))
	assert.NotContains(t, paletteNames(cp), "force_quit")
	assert.NotContains(t, paletteNames(cp), "down")
	assert.Contains(t, cp.View(), "(selected hook: block-rm)")
}

func TestCommandPalette_Filter(t *testing.T) {
	tests := []struct {
		query    string
		expected []string
	}{
		{query: "theme", expected: []string{"theme_cycle", "theme_pick"}},
		{query: "copy url", expected: []string{"copy_url"}},
		{query: "zzz", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			cp := newTestPalette()
			for _, r := range tt.query {
				cp.Update(runeKey(r))
			}
			assert.ElementsMatch(t, tt.expected, paletteNames(cp))
		})
	}
}

func TestCommandPalette_NoMatchView(t *testing.T) {
	cp := newTestPalette()
	for _, r := range "zzz" {
		cp.Update(runeKey(r))
	}
	assert.Contains(t, cp.View(), "No matching actions")

	cp.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, cp.Completed)
}

func TestCommandPalette_SelectAndCancel(t *testing.T) {
	t.Run("enter selects the highlighted action", func(t *testing.T) {
		cp := newTestPalette()
		cp.Update(tea.KeyMsg{Type: tea.KeyDown})
		cp.Update(tea.KeyMsg{Type: tea.KeyDown})
		cp.Update(tea.KeyMsg{Type: tea.KeyUp})
		cp.Update(tea.KeyMsg{Type: tea.KeyEnter})

		require.True(t, cp.Completed)
		require.NotNil(t, cp.Result.Action)
		assert.Equal(t, GetPaletteActions()[1].Name, cp.Result.Action.Name)
	})

	t.Run("up stops at the top", func(t *testing.T) {
		cp := newTestPalette()
		cp.Update(tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, 0, cp.selectedIndex)
	})

	t.Run("esc cancels", func(t *testing.T) {
		cp := newTestPalette()
		cp.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.True(t, cp.Completed)
		assert.True(t, cp.Result.Cancelled)
		assert.Nil(t, cp.Result.Action)
	})
}

func TestCommandPalette_VisibleRange(t *testing.T) {
	cp := newTestPalette()
	require.Greater(t, len(cp.actions), maxVisibleItems)

	start, end := cp.visibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, maxVisibleItems, end)

	for range len(cp.actions) {
		cp.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	start, end = cp.visibleRange()
	assert.Equal(t, len(cp.actions), end)
	assert.Equal(t, len(cp.actions)-maxVisibleItems, start)
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Cycle theme", capitalizeFirst("cycle theme"))
	assert.Equal(t, "", capitalizeFirst(""))
	assert.Equal(t, "ab  ", padRight("ab", 4))
}
