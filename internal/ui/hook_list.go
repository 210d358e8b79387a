package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/theme"
)

// maxDescriptionLines clamps card descriptions
const maxDescriptionLines = 3

// HookList shows the filtered hooks as cards with a movable cursor
type HookList struct {
	cursor int
	hooks  []domain.Hook
}

// NewHookList creates an empty list
func NewHookList() *HookList {
	return &HookList{hooks: []domain.Hook{}}
}

// SetHooks replaces the displayed hooks and moves the cursor to the top
func (l *HookList) SetHooks(hooks []domain.Hook) {
	l.hooks = hooks
	l.cursor = 0
}

// Hooks returns the displayed hooks
func (l *HookList) Hooks() []domain.Hook {
	return l.hooks
}

// Len returns the number of displayed hooks
func (l *HookList) Len() int {
	return len(l.hooks)
}

// Cursor returns the selected index
func (l *HookList) Cursor() int {
	return l.cursor
}

// Up moves the cursor up, stopping at the first card
func (l *HookList) Up() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// Down moves the cursor down, stopping at the last card
func (l *HookList) Down() {
	if l.cursor < len(l.hooks)-1 {
		l.cursor++
	}
}

// Selected returns the hook under the cursor
func (l *HookList) Selected() (domain.Hook, bool) {
	if l.cursor < 0 || l.cursor >= len(l.hooks) {
		return domain.Hook{}, false
	}
	return l.hooks[l.cursor], true
}

// View renders as many cards as fit in height lines, scrolled so the
// selected card is visible. An empty list renders the empty state.
func (l *HookList) View(styles theme.Styles, width, height int) string {
	if len(l.hooks) == 0 {
		return renderEmptyState(styles, width)
	}

	var lines []string
	var selStart, selEnd int
	for i, hook := range l.hooks {
		card := strings.Split(renderCard(styles, hook, i == l.cursor, width), "\n")
		if i == l.cursor {
			selStart = len(lines)
			selEnd = selStart + len(card)
		}
		lines = append(lines, card...)
		// Cards past the cursor only matter until the window is full
		if i > l.cursor && len(lines) >= selEnd+height {
			break
		}
	}

	offset := 0
	if selEnd > height {
		offset = min(selEnd-height, selStart)
	}
	end := min(offset+height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}

// renderCard renders one hook as a bordered card
func renderCard(styles theme.Styles, hook domain.Hook, selected bool, width int) string {
	box := styles.Card
	if selected {
		box = styles.CardSelected
	}
	inner := max(width-box.GetHorizontalFrameSize(), 20)

	badge := styles.Badge(hook.Category).Render(hook.Category.String())
	var stars string
	if n := hook.StarCount(); n > 0 {
		stars = styles.Stars.Render(fmt.Sprintf("★ %d", n))
	}
	gap := max(inner-lipgloss.Width(badge)-lipgloss.Width(stars), 1)
	top := badge + strings.Repeat(" ", gap) + stars

	var b strings.Builder
	b.WriteString(top + "\n")
	b.WriteString(styles.CardName.Render(hook.Name) + "\n")
	if hook.Description != "" {
		b.WriteString(styles.CardDesc.Render(clampLines(hook.Description, inner, maxDescriptionLines)) + "\n")
	}
	b.WriteString(styles.Muted.Render(hook.Repository()) + "\n")
	b.WriteString(styles.Muted.Render("View on GitHub → ") + styles.Link.Render(hook.RepoURL))

	return box.Width(inner + box.GetHorizontalPadding()).Render(b.String())
}

// renderEmptyState renders the no-results message
func renderEmptyState(styles theme.Styles, width int) string {
	block := styles.EmptyTitle.Render(domain.EmptyStateTitle) + "\n" +
		styles.EmptyHint.Render(domain.EmptyStateHint)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n"+block+"\n")
}

// clampLines word-wraps text to width and keeps at most n lines, marking
// a cut with an ellipsis
func clampLines(text string, width, n int) string {
	lines := wrapWords(text, width)
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}

	lines = lines[:n]
	last := []rune(lines[n-1])
	if len(last) >= width {
		last = last[:max(width-1, 0)]
	}
	lines[n-1] = strings.TrimRight(string(last), " ") + "…"
	return strings.Join(lines, "\n")
}

// wrapWords greedily wraps on spaces. Words longer than width are split.
func wrapWords(text string, width int) []string {
	width = max(width, 1)
	var lines []string
	var current []rune

	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		for len(runes) > width {
			if len(current) > 0 {
				lines = append(lines, string(current))
				current = nil
			}
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		if len(current) > 0 && len(current)+1+len(runes) > width {
			lines = append(lines, string(current))
			current = nil
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, runes...)
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}
