package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hookhub/hookhub/internal/domain"
)

// ActionDispatcher maps key definitions to UI messages.
// This keeps the command palette decoupled from specific message types.
type ActionDispatcher struct {
	hook *domain.Hook
}

// NewActionDispatcher creates a new action dispatcher.
// hook can be nil if the list is empty.
func NewActionDispatcher(hook *domain.Hook) *ActionDispatcher {
	return &ActionDispatcher{hook: hook}
}

// Dispatch returns the appropriate tea.Msg for the given key definition.
// Returns nil if the action cannot be dispatched.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	if hookMsg, ok := def.Msg.(HookAwareMsg); ok {
		if d.hook == nil {
			return nil
		}
		return hookMsg.WithHook(*d.hook)
	}

	return def.Msg
}
