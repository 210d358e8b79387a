package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/hookhub/hookhub/internal/theme"
)

// maxVisibleItems is the number of actions shown at once
const maxVisibleItems = 6

// CommandPalette is a searchable action palette overlay.
type CommandPalette struct {
	actions       []KeyDefinition // Filtered actions, best match first
	allActions    []KeyDefinition
	Completed     bool
	filterInput   textinput.Model
	hookName      string // Display name for header
	keys          KeyMap
	lastQuery     string
	Result        CommandPaletteResult
	selectedIndex int
	styles        theme.Styles
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// actionSource implements fuzzy.Source over the action help texts
type actionSource []KeyDefinition

func (s actionSource) String(i int) string { return s[i].Help }
func (s actionSource) Len() int            { return len(s) }

// NewCommandPalette creates a new command palette.
// hookName is the selected hook shown in the header; it may be empty.
func NewCommandPalette(hookName string, keys KeyMap, styles theme.Styles) *CommandPalette {
	actions := GetPaletteActions()

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = styles.FilterPrompt
	ti.Cursor.Style = styles.FilterCursor
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = styles.Dimmed
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		filterInput: ti,
		hookName:    hookName,
		keys:        keys,
		styles:      styles,
	}
}

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		return cp, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEsc || key.Matches(msg, cp.keys.Application.ForceQuit.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case msg.Type == tea.KeyEnter:
			if cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()

	return cp, cmd
}

// View renders the command palette as a bordered panel.
func (cp *CommandPalette) View() string {
	header := cp.styles.PaletteTitle.Render("⌘ Command Palette")
	if cp.hookName != "" {
		header += " " + cp.styles.Dimmed.Render("(selected hook: "+cp.hookName+")")
	}

	var items []string
	helpWidth := cp.maxHelpLen()
	start, end := cp.visibleRange()
	hasMoreAbove := start > 0
	hasMoreBelow := end < len(cp.actions)

	for i := start; i < end; i++ {
		def := cp.actions[i]

		var prefix string
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && hasMoreAbove:
			prefix = cp.styles.ScrollIndicator.Render("↑ ")
		case i == end-1 && hasMoreBelow:
			prefix = cp.styles.ScrollIndicator.Render("↓ ")
		default:
			prefix = "  "
		}

		items = append(items, prefix+
			cp.styles.PaletteItem.Render(padRight(capitalizeFirst(def.Help), helpWidth))+
			cp.styles.PaletteShortcut.Render("  "+def.Defaults[0]))
	}

	if len(items) == 0 {
		items = append(items, cp.styles.PaletteDesc.Render("  No matching actions"))
	}
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	inner := header + "\n\n" + cp.filterInput.View() + "\n\n" + strings.Join(items, "\n")
	return cp.styles.PaletteBorder.Width(cp.paletteWidth()).Render(inner)
}

// filterActions ranks actions against the current input.
func (cp *CommandPalette) filterActions() {
	query := strings.TrimSpace(cp.filterInput.Value())
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query
	cp.selectedIndex = 0

	if query == "" {
		cp.actions = cp.allActions
		return
	}

	matches := fuzzy.FindFrom(query, actionSource(cp.allActions))
	filtered := make([]KeyDefinition, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, cp.allActions[m.Index])
	}
	cp.actions = filtered
}

// maxHelpLen uses allActions to keep alignment stable during filtering.
func (cp *CommandPalette) maxHelpLen() int {
	maxLen := 0
	for _, def := range cp.allActions {
		maxLen = max(maxLen, len(def.Help))
	}
	return maxLen
}

// paletteWidth is at most 70 columns and fits the terminal
func (cp *CommandPalette) paletteWidth() int {
	if cp.width <= 0 {
		return 60
	}
	return min(cp.width-4, 70)
}

// visibleRange keeps the selected item visible with some context.
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

// padRight pads a string to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// capitalizeFirst returns the string with the first letter uppercased.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
