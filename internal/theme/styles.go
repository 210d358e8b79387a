package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hookhub/hookhub/internal/domain"
)

// Styles holds every lipgloss style the TUI renders with. It is built from a
// Palette and rebuilt whenever the theme changes.
type Styles struct {
	Palette  Palette
	renderer *lipgloss.Renderer

	// Header
	AppName  lipgloss.Style
	Subtitle lipgloss.Style
	Tagline  lipgloss.Style
	Version  lipgloss.Style

	// Search bar
	SearchBox         lipgloss.Style
	SearchBoxFocused  lipgloss.Style
	SearchPlaceholder lipgloss.Style
	SearchPrompt      lipgloss.Style

	// Category tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Hook list
	Card         lipgloss.Style
	CardDesc     lipgloss.Style
	CardName     lipgloss.Style
	CardSelected lipgloss.Style
	Link         lipgloss.Style
	Muted        lipgloss.Style
	ResultCount  lipgloss.Style
	Stars        lipgloss.Style

	// Empty state
	EmptyHint  lipgloss.Style
	EmptyTitle lipgloss.Style

	// Detail overlay
	DetailBorder  lipgloss.Style
	DetailLabel   lipgloss.Style
	DetailSection lipgloss.Style
	DetailValue   lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Help screen
	Help      lipgloss.Style
	HelpDesc  lipgloss.Style
	HelpGroup lipgloss.Style
	HelpKey   lipgloss.Style

	// Command palette
	Dimmed          lipgloss.Style
	FilterCursor    lipgloss.Style
	FilterPrompt    lipgloss.Style
	PaletteBorder   lipgloss.Style
	PaletteDesc     lipgloss.Style
	PaletteItem     lipgloss.Style
	PaletteShortcut lipgloss.Style
	PaletteTitle    lipgloss.Style
	ScrollIndicator lipgloss.Style

	Error lipgloss.Style
}

// NewStyles builds styles for p. A nil renderer uses lipgloss's default
// renderer; SSH sessions pass the renderer bound to their own terminal.
func NewStyles(r *lipgloss.Renderer, p Palette) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := Styles{Palette: p, renderer: r}

	s.AppName = r.NewStyle().Bold(true).Foreground(p.Primary)
	s.Subtitle = r.NewStyle().Bold(true).Foreground(p.Secondary)
	s.Tagline = r.NewStyle().Foreground(p.Normal)
	s.Version = r.NewStyle().Foreground(p.Muted)

	s.SearchBox = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	s.SearchBoxFocused = s.SearchBox.BorderForeground(p.Accent)
	s.SearchPlaceholder = r.NewStyle().Foreground(p.Muted)
	s.SearchPrompt = r.NewStyle().Foreground(p.Accent)

	s.TabActive = r.NewStyle().
		Bold(true).
		Foreground(p.TabText).
		Background(p.Accent).
		Padding(0, 2)
	s.TabInactive = r.NewStyle().
		Foreground(p.Normal).
		Padding(0, 2)

	s.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	s.CardSelected = s.Card.BorderForeground(p.Accent)
	s.CardName = r.NewStyle().Bold(true).Foreground(p.Highlight)
	s.CardDesc = r.NewStyle().Foreground(p.Normal)
	s.Link = r.NewStyle().Foreground(p.Link).Underline(true)
	s.Muted = r.NewStyle().Foreground(p.Muted)
	s.ResultCount = r.NewStyle().Foreground(p.Subtle)
	s.Stars = r.NewStyle().Foreground(p.Star)

	s.EmptyTitle = r.NewStyle().Bold(true).Foreground(p.Highlight)
	s.EmptyHint = r.NewStyle().Foreground(p.Muted)

	s.DetailBorder = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)
	s.DetailLabel = r.NewStyle().Foreground(p.Subtle).Width(16)
	s.DetailSection = r.NewStyle().Bold(true).Foreground(p.Secondary).MarginTop(1)
	s.DetailValue = r.NewStyle().Foreground(p.Normal)

	s.Footer = r.NewStyle().Foreground(p.Muted)
	s.FooterKey = r.NewStyle().Foreground(p.Highlight).Bold(true)

	s.Help = r.NewStyle().Foreground(p.Muted).Padding(1, 0)
	s.HelpDesc = r.NewStyle().Foreground(p.Subtle)
	s.HelpGroup = r.NewStyle().Bold(true).Foreground(p.Accent).MarginTop(1)
	s.HelpKey = r.NewStyle().Foreground(p.Highlight).Bold(true).Width(25)

	s.Dimmed = r.NewStyle().Foreground(p.Dimmed)
	s.FilterCursor = r.NewStyle().Foreground(p.Accent)
	s.FilterPrompt = r.NewStyle().Foreground(p.Star)
	s.PaletteBorder = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1)
	s.PaletteDesc = r.NewStyle().Foreground(p.Subtle)
	s.PaletteItem = r.NewStyle().Foreground(p.Normal)
	s.PaletteShortcut = r.NewStyle().Foreground(p.Highlight).Bold(true)
	s.PaletteTitle = r.NewStyle().Foreground(p.Secondary).Bold(true)
	s.ScrollIndicator = r.NewStyle().Foreground(p.Muted)

	s.Error = r.NewStyle().Foreground(p.Error).Bold(true)

	return s
}

// Badge returns the pill style for a category
func (s Styles) Badge(category domain.Category) lipgloss.Style {
	colors := CategoryColor(category, s.Palette.Dark)
	return s.renderer.NewStyle().
		Foreground(colors.Foreground).
		Background(colors.Background).
		Padding(0, 1)
}
