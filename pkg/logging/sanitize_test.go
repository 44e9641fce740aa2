package logging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain GPU name passes through",
			input:    "NVIDIA GeForce RTX 4090",
			expected: "NVIDIA GeForce RTX 4090",
		},
		{
			name:     "newlines escaped",
			input:    "radeon\nfake log line",
			expected: "radeon\\nfake log line",
		},
		{
			name:     "carriage return and tab escaped",
			input:    "a\r\tb",
			expected: "a\\r\\tb",
		},
		{
			name:     "backslash escaped",
			input:    `intel\arc`,
			expected: `intel\\arc`,
		},
		{
			name:     "control characters replaced",
			input:    "m1\x00\x07pro",
			expected: "m1??pro",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitizeTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 500)
	sanitized := Sanitize(long)
	assert.Len(t, sanitized, maximumSanitizedLength+len("...[truncated]"))
	assert.True(t, strings.HasSuffix(sanitized, "...[truncated]"))
}
