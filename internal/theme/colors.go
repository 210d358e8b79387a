package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Palette is the set of colors a resolved appearance renders with
type Palette struct {
	Accent    Color // active tab, selection marker
	Border    Color
	Dark      bool
	Dimmed    Color // background behind overlays
	Error     Color
	Highlight Color // emphasis, shortcut keys
	Link      Color
	Muted     Color // secondary text
	Name      string
	Normal    Color // default text
	Primary   Color // app name, titles
	Secondary Color // subtitles
	Star      Color
	Subtle    Color // labels
	TabText   Color // text on the active tab
}

// LightPalette renders on light terminal backgrounds
var LightPalette = Palette{
	Accent:    "57",
	Border:    "250",
	Dark:      false,
	Dimmed:    "252",
	Error:     "160",
	Highlight: "16",
	Link:      "26",
	Muted:     "244",
	Name:      "light",
	Normal:    "236",
	Primary:   "55",
	Secondary: "31",
	Star:      "172",
	Subtle:    "241",
	TabText:   "231",
}

// DarkPalette renders on dark terminal backgrounds
var DarkPalette = Palette{
	Accent:    "99",
	Border:    "238",
	Dark:      true,
	Dimmed:    "240",
	Error:     "196",
	Highlight: "255",
	Link:      "75",
	Muted:     "241",
	Name:      "dark",
	Normal:    "250",
	Primary:   "99",
	Secondary: "86",
	Star:      "220",
	Subtle:    "245",
	TabText:   "231",
}
