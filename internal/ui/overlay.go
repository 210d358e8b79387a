package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// compositeOverlay centres overlay on top of background. The background
// stays visible but loses its colours and is rendered with dim.
func compositeOverlay(background, overlay string, width, height int, dim lipgloss.Style) string {
	bgLines := strings.Split(background, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	for i, line := range bgLines {
		dimmed := dim.Render(stripAnsi(line))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		bgLines[i] = dimmed
	}

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}

	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)
	leftPad := dim.Render(strings.Repeat(" ", startX))

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = leftPad + line + dim.Render(strings.Repeat(" ", rightPad))
	}

	return strings.Join(bgLines, "\n")
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// SGR and most CSI sequences end with a letter
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}
