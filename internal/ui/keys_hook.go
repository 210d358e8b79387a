package ui

import (
	"github.com/hookhub/hookhub/internal/config"
)

// HookKeys defines key bindings acting on the selected hook
type HookKeys struct {
	CopyURL    KeyWithTip
	OpenDetail KeyWithTip
	OpenURL    KeyWithTip
}

// newHookKeys creates hook key bindings
func newHookKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) HookKeys {
	return HookKeys{
		CopyURL:    buildBinding("copy_url", defaults, customKeys),
		OpenDetail: buildBinding("open_detail", defaults, customKeys),
		OpenURL:    buildBinding("open_url", defaults, customKeys),
	}
}
