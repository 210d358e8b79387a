package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	minErrorWidth  = 10
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay renders err in at most two word-wrapped lines of
// maxWidth, prefixed with "Error: ". Longer messages end with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	lineWidth := max(maxWidth, minErrorWidth)
	firstLineWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), minErrorWidth)

	var lines []string
	var current strings.Builder
	width := firstLineWidth
	truncated := false

	for _, word := range words {
		currentLen := utf8.RuneCountInString(current.String())
		if currentLen > 0 && currentLen+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
			width = lineWidth
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, current.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := width - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
