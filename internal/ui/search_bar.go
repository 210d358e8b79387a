package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hookhub/hookhub/internal/debounce"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/theme"
)

// SearchPlaceholder is shown while the search box is empty
const SearchPlaceholder = "Search hooks by name, description, or repository..."

// SearchBar is a text input whose value is committed as the search query
// only after typing pauses for the debounce delay. Clearing commits at once.
type SearchBar struct {
	committed string
	input     textinput.Model
	styles    theme.Styles
	timer     *debounce.Timer
}

// NewSearchBar creates an unfocused, empty search bar. delay <= 0 uses
// debounce.DefaultDelay.
func NewSearchBar(styles theme.Styles, delay time.Duration) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = "⌕ "

	s := &SearchBar{
		input: ti,
		timer: debounce.New(delay),
	}
	s.SetStyles(styles)
	return s
}

// SetStyles applies a new theme
func (s *SearchBar) SetStyles(styles theme.Styles) {
	s.styles = styles
	s.input.PromptStyle = styles.SearchPrompt
	s.input.PlaceholderStyle = styles.SearchPlaceholder
	s.input.TextStyle = styles.CardDesc
	s.input.Cursor.Style = styles.FilterCursor
}

// Focus gives the search bar keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus. A pending commit still fires.
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the search bar has keyboard focus
func (s *SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the displayed text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// Committed returns the last committed query
func (s *SearchBar) Committed() string {
	return s.committed
}

// Pending reports whether a commit is waiting for the quiet period
func (s *SearchBar) Pending() bool {
	return s.timer.Pending()
}

// Update handles keystrokes while focused and debounce ticks at any time.
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case debounce.FiredMsg:
		value, ok := s.timer.Fire(msg)
		if !ok {
			return nil
		}
		return s.commit(value)

	case tea.KeyMsg:
		if !s.input.Focused() {
			return nil
		}
		before := s.input.Value()
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if s.input.Value() == before {
			return cmd
		}
		return tea.Batch(cmd, s.timer.Schedule(s.input.Value()))
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Clear cancels any pending commit, empties the input and commits the
// empty query immediately.
func (s *SearchBar) Clear() tea.Cmd {
	s.timer.Cancel()
	s.input.SetValue("")
	return s.commit("")
}

// Sync replaces the displayed value without scheduling a commit. Any
// pending commit is dropped and value becomes the committed query.
func (s *SearchBar) Sync(value string) {
	s.timer.Cancel()
	s.input.SetValue(value)
	s.committed = value
}

// Close cancels pending commits. Ticks already in flight are ignored.
func (s *SearchBar) Close() {
	s.timer.Cancel()
}

// View renders the bordered search box at the given outer width
func (s *SearchBar) View(width int) string {
	box := s.styles.SearchBox
	if s.input.Focused() {
		box = s.styles.SearchBoxFocused
	}
	inner := max(width-box.GetHorizontalBorderSize(), 10)
	s.input.Width = max(inner-box.GetHorizontalPadding()-lipgloss.Width(s.input.Prompt)-1, 1)
	return box.Width(inner).Render(s.input.View())
}

func (s *SearchBar) commit(value string) tea.Cmd {
	s.committed = value
	logging.Logger.Debug("Search query committed", "query", value)
	return func() tea.Msg {
		return QueryCommittedMsg{Query: value}
	}
}
