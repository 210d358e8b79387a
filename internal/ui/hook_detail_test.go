package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/theme"
)

func detailedHook() domain.Hook {
	hook := testHooks()[1]
	hook.FullDescription = "Blocks rm -rf and friends before they run"
	hook.Metadata.Version = "1.2.0"
	hook.Metadata.Tags = []string{"safety", "shell"}
	hook.Stats.Installs = 1500
	hook.Stats.Rating = 4.5
	hook.Stats.Reviews = 12
	hook.Quality.Verified = true
	hook.Quality.DocumentationScore = 90
	hook.Compatibility.Dependencies = []domain.Dependency{{Name: "jq", Required: true, Version: ">=1.6"}}
	hook.Author = domain.Author{Name: "Sam Lee", Username: "slee", IsVerified: true}
	return hook
}

func TestRenderHookDetail(t *testing.T) {
	content := renderHookDetail(theme.NewStyles(nil, theme.DarkPalette), detailedHook(), 70)

	for _, want := range []string{
		"block-rm",
		"safety/guard",
		"Blocks rm -rf and friends before they run",
		"Details", "1.2.0", "safety, shell",
		"Stats", "1500", "4.5 (12 reviews)",
		"Quality", "✓", "90/100",
		"Dependencies", "required, >=1.6",
		"Author", "Sam Lee (@slee) ✓",
		"View on GitHub → https://github.com/safety/guard",
	} {
		assert.Contains(t, content, want)
	}
	assert.NotContains(t, content, "Stops dangerous shell commands")
}

func TestRenderHookDetail_OmitsEmptySections(t *testing.T) {
	content := renderHookDetail(theme.NewStyles(nil, theme.DarkPalette), testHooks()[1], 70)

	assert.Contains(t, content, "Stops dangerous shell commands")
	for _, section := range []string{"Details", "Stats", "Quality", "Dependencies", "Author"} {
		assert.NotContains(t, content, section)
	}
}

func TestDetailFormatting(t *testing.T) {
	assert.Equal(t, "optional", dependencyText(domain.Dependency{Name: "x"}))
	assert.Equal(t, "required, install: brew install jq", dependencyText(domain.Dependency{Required: true, InstallCommand: "brew install jq"}))
	assert.Equal(t, "@slee", authorName(domain.Author{Username: "slee"}))
	assert.Equal(t, "", authorName(domain.Author{IsVerified: true}))
	assert.Equal(t, "4.0", ratingText(domain.Stats{Rating: 4}))
	assert.Equal(t, "", ratingText(domain.Stats{Reviews: 3}))
}

func TestHookDetail_Keys(t *testing.T) {
	keys := NewKeyMap(nil)
	hook := detailedHook()

	t.Run("copy returns the hook", func(t *testing.T) {
		d := NewHookDetail(hook, &keys, theme.NewStyles(nil, theme.DarkPalette))
		d.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

		_, cmd := d.Update(runeKey('y'))
		require.NotNil(t, cmd)
		assert.Equal(t, CopyURLMsg{Hook: hook}, cmd())
		assert.False(t, d.Completed)
		assert.Contains(t, d.View(), "y copy URL")
	})

	t.Run("open returns the hook", func(t *testing.T) {
		d := NewHookDetail(hook, &keys, theme.NewStyles(nil, theme.DarkPalette))
		d.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

		_, cmd := d.Update(runeKey('o'))
		require.NotNil(t, cmd)
		assert.Equal(t, OpenURLMsg{Hook: hook}, cmd())
		assert.Contains(t, d.View(), "o open")
	})

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyEnter}, runeKey('q')} {
		t.Run("close on "+msg.String(), func(t *testing.T) {
			d := NewHookDetail(hook, &keys, theme.NewStyles(nil, theme.DarkPalette))
			d.Update(msg)
			assert.True(t, d.Completed)
		})
	}
}
