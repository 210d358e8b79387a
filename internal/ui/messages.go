package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hookhub/hookhub/internal/domain"
)

// HookAwareMsg is implemented by messages that act on the selected hook.
// Messages without hook requirements don't need to implement this.
type HookAwareMsg interface {
	WithHook(hook domain.Hook) tea.Msg
}

// Action messages. Each one is produced by a key binding or the command
// palette and handled by Model.updateList.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// CycleThemeMsg switches to the next theme mode
type CycleThemeMsg struct{}

// PickThemeMsg opens the theme selection form
type PickThemeMsg struct{}

// FocusSearchMsg moves keyboard focus to the search bar
type FocusSearchMsg struct{}

// ClearSearchMsg empties the search bar and commits the empty query at once
type ClearSearchMsg struct{}

// NextCategoryMsg selects the next category tab
type NextCategoryMsg struct{}

// PrevCategoryMsg selects the previous category tab
type PrevCategoryMsg struct{}

// OpenDetailMsg requests the detail overlay for a hook
type OpenDetailMsg struct {
	Hook domain.Hook
}

func (m OpenDetailMsg) WithHook(h domain.Hook) tea.Msg {
	return OpenDetailMsg{Hook: h}
}

// CopyURLMsg requests copying a hook's repository URL
type CopyURLMsg struct {
	Hook domain.Hook
}

func (m CopyURLMsg) WithHook(h domain.Hook) tea.Msg {
	return CopyURLMsg{Hook: h}
}

// OpenURLMsg requests opening a hook's repository in the browser
type OpenURLMsg struct {
	Hook domain.Hook
}

func (m OpenURLMsg) WithHook(h domain.Hook) tea.Msg {
	return OpenURLMsg{Hook: h}
}

// State change messages

// QueryCommittedMsg carries a search query once typing has settled
type QueryCommittedMsg struct {
	Query string
}

// CategorySelectedMsg carries the newly selected category tab
type CategorySelectedMsg struct {
	Category string
}

// urlCopiedMsg reports the result of a clipboard write
type urlCopiedMsg struct {
	err error
	url string
}

// urlOpenedMsg reports the result of starting the browser
type urlOpenedMsg struct {
	err error
	url string
}

// clearNoticeMsg hides the status notice
type clearNoticeMsg struct{}
