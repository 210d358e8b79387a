package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/theme"
)

// CategoryBar renders the category tabs and tracks the selected one.
// The first tab is always "All".
type CategoryBar struct {
	categories []string
	selected   int
}

// NewCategoryBar creates a bar over categories as produced by
// domain.ExtractCategories, with "All" selected
func NewCategoryBar(categories []string) *CategoryBar {
	if len(categories) == 0 {
		categories = []string{domain.AllCategories}
	}
	return &CategoryBar{categories: categories}
}

// Categories returns the tab labels
func (b *CategoryBar) Categories() []string {
	return b.categories
}

// Selected returns the selected category name
func (b *CategoryBar) Selected() string {
	return b.categories[b.selected]
}

// Next selects the following tab, wrapping to "All" after the last
func (b *CategoryBar) Next() tea.Cmd {
	b.selected = (b.selected + 1) % len(b.categories)
	return b.selectedCmd()
}

// Prev selects the preceding tab, wrapping to the last after "All"
func (b *CategoryBar) Prev() tea.Cmd {
	b.selected = (b.selected - 1 + len(b.categories)) % len(b.categories)
	return b.selectedCmd()
}

// Select picks a category by name. Unknown names leave the selection unchanged.
func (b *CategoryBar) Select(name string) (tea.Cmd, bool) {
	for i, c := range b.categories {
		if c == name {
			b.selected = i
			return b.selectedCmd(), true
		}
	}
	return nil, false
}

func (b *CategoryBar) selectedCmd() tea.Cmd {
	category := b.Selected()
	return func() tea.Msg {
		return CategorySelectedMsg{Category: category}
	}
}

// View renders the tabs, wrapping onto more rows when wider than width
func (b *CategoryBar) View(styles theme.Styles, width int) string {
	var rows []string
	var row []string
	rowWidth := 0

	for i, c := range b.categories {
		style := styles.TabInactive
		if i == b.selected {
			style = styles.TabActive
		}
		tab := style.Render(c)
		w := lipgloss.Width(tab)

		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, strings.Join(row, ""))
			row, rowWidth = nil, 0
		}
		row = append(row, tab)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, ""))
	}

	return strings.Join(rows, "\n")
}
