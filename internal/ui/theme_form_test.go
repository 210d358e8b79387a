package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/hookhub/hookhub/internal/theme"
)

func TestThemeOptions(t *testing.T) {
	options := ThemeOptions()
	assert.Len(t, options, len(theme.AllModes))
	for i, opt := range options {
		assert.Equal(t, theme.AllModes[i], opt.Value)
	}
}

func TestThemeForm_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			form := NewThemeForm(theme.ModeLight)
			form.Update(msg)

			assert.True(t, form.Completed)
			assert.True(t, form.Result().Cancelled)
		})
	}
}

func TestThemeForm_Preselects(t *testing.T) {
	form := NewThemeForm(theme.ModeDark)
	assert.Equal(t, theme.ModeDark, form.selectedMode)
	assert.False(t, form.Completed)
}
