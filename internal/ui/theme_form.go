package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hookhub/hookhub/internal/theme"
)

// ThemeFormResult contains the outcome of the theme picker
type ThemeFormResult struct {
	Cancelled bool
	Mode      theme.Mode
}

// ThemeForm is a Bubble Tea component for choosing the theme mode
type ThemeForm struct {
	Completed    bool
	form         *huh.Form
	result       ThemeFormResult
	selectedMode theme.Mode
}

// ThemeOptions returns the select options for every mode
func ThemeOptions() []huh.Option[theme.Mode] {
	options := make([]huh.Option[theme.Mode], 0, len(theme.AllModes))
	for _, mode := range theme.AllModes {
		options = append(options, huh.NewOption(fmt.Sprintf("%s %s", mode.Icon(), mode), mode))
	}
	return options
}

// NewThemeSelect builds the select field bound to value
func NewThemeSelect(value *theme.Mode) *huh.Select[theme.Mode] {
	return huh.NewSelect[theme.Mode]().
		Title("Theme").
		Description("System follows the terminal background").
		Options(ThemeOptions()...).
		Value(value)
}

// NewThemeForm creates a picker with current preselected
func NewThemeForm(current theme.Mode) *ThemeForm {
	tf := &ThemeForm{selectedMode: current}
	tf.form = huh.NewForm(huh.NewGroup(NewThemeSelect(&tf.selectedMode)))
	return tf
}

func (tf *ThemeForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *ThemeForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			tf.result.Cancelled = true
			tf.Completed = true
			return tf, nil
		}
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	if tf.form.State == huh.StateCompleted {
		tf.Completed = true
		tf.result.Mode = tf.selectedMode
		return tf, nil
	}

	return tf, cmd
}

func (tf *ThemeForm) View() string {
	if tf.form != nil {
		return tf.form.View()
	}
	return ""
}

// Result returns the form result
func (tf *ThemeForm) Result() ThemeFormResult {
	return tf.result
}
