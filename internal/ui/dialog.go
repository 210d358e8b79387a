package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hookhub/hookhub/internal/theme"
)

// Dialog wraps any tea.Model content and prepends the application header
// with the dialog title, so every dialog looks the same.
type Dialog struct {
	content tea.Model
	devMode bool
	styles  theme.Styles
	title   string
}

// NewDialog creates a new dialog wrapper around content.
func NewDialog(title string, content tea.Model, devMode bool, styles theme.Styles) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		styles:  styles,
		title:   title,
	}
}

// Init delegates to wrapped content's Init method.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method.
// The returned tea.Model is the Dialog itself with updated content.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View prepends the header to the wrapped content's view.
func (d *Dialog) View() string {
	return renderHeader(d.styles, d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion, e.g.
//
//	if form, ok := dialog.Content().(*huh.Form); ok && form.State == huh.StateCompleted {
func (d *Dialog) Content() tea.Model {
	return d.content
}
