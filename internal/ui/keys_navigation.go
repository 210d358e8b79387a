package ui

import (
	"github.com/hookhub/hookhub/internal/config"
)

// NavigationKeys defines key bindings for moving through the catalog
type NavigationKeys struct {
	ClearSearch  KeyWithTip
	Down         KeyWithTip
	NextCategory KeyWithTip
	PrevCategory KeyWithTip
	Search       KeyWithTip
	Up           KeyWithTip
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		ClearSearch:  buildBinding("clear_search", defaults, customKeys),
		Down:         buildBinding("down", defaults, customKeys),
		NextCategory: buildBinding("next_category", defaults, customKeys),
		PrevCategory: buildBinding("prev_category", defaults, customKeys),
		Search:       buildBinding("search", defaults, customKeys),
		Up:           buildBinding("up", defaults, customKeys),
	}
}
