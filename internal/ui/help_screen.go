package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hookhub/hookhub/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by group
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	styles      theme.Styles
	viewport    viewport.Model
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, styles theme.Styles) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys, styles),
		keys:     keys,
		styles:   styles,
		viewport: viewport.New(0, 0),
	}
}

// buildHelpContent builds the complete help text from the key bindings
func buildHelpContent(keys *KeyMap, styles theme.Styles) string {
	var b strings.Builder
	group := func(title string, bindings ...key.Binding) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.HelpGroup.Render(title) + "\n")
		for _, binding := range bindings {
			b.WriteString(renderBinding(styles, binding))
		}
	}

	group("Browsing",
		keys.Navigation.Up.Binding,
		keys.Navigation.Down.Binding,
		keys.Navigation.NextCategory.Binding,
		keys.Navigation.PrevCategory.Binding,
	)

	group("Search",
		keys.Navigation.Search.Binding,
		keys.Navigation.ClearSearch.Binding,
	)
	b.WriteString(renderShortcut(styles, "esc", "clear the query, or leave the search box when empty"))
	b.WriteString(renderShortcut(styles, "enter", "leave the search box keeping the query"))

	group("Hooks",
		keys.Hook.OpenDetail.Binding,
		keys.Hook.CopyURL.Binding,
		keys.Hook.OpenURL.Binding,
	)

	group("Application",
		keys.Application.CommandPalette.Binding,
		keys.Application.ThemeCycle.Binding,
		keys.Application.ThemePick.Binding,
		keys.Application.Help.Binding,
		keys.Application.Quit.Binding,
		keys.Application.ForceQuit.Binding,
	)

	if tips := keys.Tips(); len(tips) > 0 {
		b.WriteString("\n" + styles.HelpGroup.Render("Tips") + "\n")
		for _, tip := range tips {
			b.WriteString(RenderTip(tip, styles) + "\n")
		}
	}

	return b.String()
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 5 lines, footer: 3 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-8, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := h.styles.Help.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n" + footer
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(styles theme.Styles, key, description string) string {
	return styles.HelpKey.Render(key) + styles.HelpDesc.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(styles theme.Styles, binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(styles, help.Key, help.Desc)
}
