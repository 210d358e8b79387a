package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/hookhub/hookhub/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Hook        HookKeys
	Navigation  NavigationKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Hook:        newHookKeys(defaults, customKeys),
		Navigation:  newNavigationKeys(defaults, customKeys),
	}
}

// ShortHelp returns a curated list of key bindings for the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Search.Binding,
		k.Navigation.NextCategory.Binding,
		k.Hook.OpenDetail.Binding,
		k.Hook.CopyURL.Binding,
		k.Application.ThemeCycle.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Tips returns every tip carried by the bindings, in help screen order
func (k KeyMap) Tips() []Tip {
	all := []KeyWithTip{
		k.Navigation.Search,
		k.Navigation.ClearSearch,
		k.Navigation.NextCategory,
		k.Hook.CopyURL,
		k.Hook.OpenURL,
		k.Application.ThemeCycle,
		k.Application.CommandPalette,
		k.Application.Help,
	}

	var tips []Tip
	for _, kt := range all {
		if kt.Tip != nil {
			tips = append(tips, *kt.Tip)
		}
	}
	return tips
}
