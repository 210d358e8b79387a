package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookhub/hookhub/internal/theme"
)

func TestCategoryBar_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		moves    []string
		expected string
	}{
		{name: "starts on All", moves: nil, expected: "All"},
		{name: "next", moves: []string{"next"}, expected: "PostToolUse"},
		{name: "next wraps", moves: []string{"next", "next", "next"}, expected: "All"},
		{name: "prev wraps to last", moves: []string{"prev"}, expected: "Workflow"},
		{name: "next then prev", moves: []string{"next", "prev"}, expected: "All"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewCategoryBar([]string{"All", "PostToolUse", "Workflow"})
			for _, move := range tt.moves {
				if move == "next" {
					bar.Next()
				} else {
					bar.Prev()
				}
			}
			assert.Equal(t, tt.expected, bar.Selected())
		})
	}
}

func TestCategoryBar_EmitsSelection(t *testing.T) {
	bar := NewCategoryBar([]string{"All", "Stop"})

	msgs := drain(bar.Next())
	require.Len(t, msgs, 1)
	assert.Equal(t, CategorySelectedMsg{Category: "Stop"}, msgs[0])
}

func TestCategoryBar_Select(t *testing.T) {
	bar := NewCategoryBar([]string{"All", "Stop"})

	cmd, ok := bar.Select("Stop")
	require.True(t, ok)
	assert.Equal(t, []tea.Msg{CategorySelectedMsg{Category: "Stop"}}, drain(cmd))

	_, ok = bar.Select("Nope")
	assert.False(t, ok)
	assert.Equal(t, "Stop", bar.Selected())
}

func TestCategoryBar_EmptyFallsBackToAll(t *testing.T) {
	bar := NewCategoryBar(nil)
	assert.Equal(t, "All", bar.Selected())
	bar.Next()
	assert.Equal(t, "All", bar.Selected())
}

func TestCategoryBar_ViewWraps(t *testing.T) {
	bar := NewCategoryBar([]string{"All", "PreToolUse", "PostToolUse", "SessionStart"})
	styles := theme.NewStyles(nil, theme.DarkPalette)

	wide := stripAnsi(bar.View(styles, 200))
	assert.Equal(t, 0, strings.Count(wide, "\n"))
	for _, c := range bar.Categories() {
		assert.Contains(t, wide, c)
	}

	narrow := bar.View(styles, 20)
	assert.Greater(t, strings.Count(narrow, "\n"), 0)
}
