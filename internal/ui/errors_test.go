package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{name: "nil", err: nil, width: 80, expected: ""},
		{name: "empty message", err: errors.New(""), width: 80, expected: "Error: unknown error"},
		{name: "fits on one line", err: errors.New("copy failed"), width: 80, expected: "Error: copy failed"},
		{
			name:     "wraps to second line",
			err:      errors.New("aaaa bbbb cccc dddd"),
			width:    17,
			expected: "Error: aaaa bbbb\ncccc dddd",
		},
		{
			name:     "truncates after two lines",
			err:      errors.New("aaaa bbbb cccc dddd eeee ffff gggg hhhh"),
			width:    17,
			expected: "Error: aaaa bbbb\ncccc dddd eeee...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_NeverMoreThanTwoLines(t *testing.T) {
	long := errors.New(strings.Repeat("word ", 200))
	out := formatErrorForDisplay(long, 30)
	assert.LessOrEqual(t, strings.Count(out, "\n"), 1)
	assert.True(t, strings.HasSuffix(out, "..."))
}
