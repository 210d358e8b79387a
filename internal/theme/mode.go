package theme

import (
	"fmt"
	"strings"

	"github.com/hookhub/hookhub/internal/domain"
)

// Mode is the user's appearance preference
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// AllModes lists the modes in toggle order
var AllModes = []Mode{ModeLight, ModeDark, ModeSystem}

// ParseMode accepts a mode name case-insensitively. Empty input means system.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ModeSystem, nil
	}
	for _, m := range AllModes {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: light, dark, system)", domain.ErrUnknownTheme, s)
}

// Next returns the following mode in the light, dark, system cycle
func (m Mode) Next() Mode {
	for i, mode := range AllModes {
		if mode == m {
			return AllModes[(i+1)%len(AllModes)]
		}
	}
	return ModeLight
}

// String implements fmt.Stringer
func (m Mode) String() string {
	return string(m)
}

// Icon returns the glyph shown next to the mode in the footer
func (m Mode) Icon() string {
	switch m {
	case ModeLight:
		return "☀"
	case ModeDark:
		return "☾"
	default:
		return "◐"
	}
}

// Resolve picks the palette for this mode. hasDarkBackground is only
// consulted in system mode.
func (m Mode) Resolve(hasDarkBackground bool) Palette {
	switch m {
	case ModeLight:
		return LightPalette
	case ModeDark:
		return DarkPalette
	}
	if hasDarkBackground {
		return DarkPalette
	}
	return LightPalette
}
