package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/hookhub/hookhub/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// newTip builds a tip. Format uses %s placeholders for keys,
// e.g. newTip("press %s to search", "/")
func newTip(format string, keys ...string) Tip {
	return Tip{Format: format, Keys: keys}
}

// String returns the tip as plain text
func (t Tip) String() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// RenderTip formats a tip with highlighted keys and muted text
func RenderTip(tip Tip, styles theme.Styles) string {
	parts := strings.Split(tip.Format, "%s")
	var result strings.Builder
	result.WriteString(styles.Muted.Render("ℹ  tip: "))
	for i, part := range parts {
		result.WriteString(styles.Muted.Render(part))
		if i < len(tip.Keys) {
			result.WriteString(styles.FooterKey.Render(tip.Keys[i]))
		}
	}
	return result.String()
}

// KeyWithTip wraps a key.Binding with an optional tip shown on the help screen
type KeyWithTip struct {
	Binding key.Binding
	Tip     *Tip
}
