package clipboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52_WriteAll(t *testing.T) {
	const url = "https://github.com/a/b"
	const b64 = "aHR0cHM6Ly9naXRodWIuY29tL2EvYg=="

	tests := []struct {
		name     string
		term     string
		text     string
		expected string
	}{
		{name: "plain terminal", term: "xterm-256color", text: url, expected: "\x1b]52;c;" + b64 + "\a"},
		{name: "no term", term: "", text: url, expected: "\x1b]52;c;" + b64 + "\a"},
		{name: "empty text", term: "xterm", text: "", expected: "\x1b]52;c;\a"},
		{name: "tmux", term: "tmux-256color", text: url, expected: "\x1bPtmux;\x1b\x1b]52;c;" + b64 + "\a\x1b\\"},
		{name: "screen", term: "screen.xterm-256color", text: url, expected: "\x1bP\x1b]52;c;" + b64 + "\a\x1b\\"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewOSC52(&buf, tt.term).WriteAll(tt.text))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestOSC52_ScreenChunksLongPayloads(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOSC52(&buf, "screen").WriteAll(strings.Repeat("x", 120)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1bP\x1b]52;c;"))
	// 120 bytes encode to 160 base64 chars, split into 76-char DCS chunks
	assert.Equal(t, 2, strings.Count(out, "\x1b\\\x1bP"))
}

func TestOSC52_TooLarge(t *testing.T) {
	var buf bytes.Buffer
	err := NewOSC52(&buf, "xterm").WriteAll(strings.Repeat("x", MaxOSC52Bytes+1))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the terminal limit")
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("channel closed") }

func TestOSC52_WriteError(t *testing.T) {
	err := NewOSC52(failingWriter{}, "xterm").WriteAll("text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}
