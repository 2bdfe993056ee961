//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpRuntimeLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "runtime operation",
			op:       OpRuntimeLoad,
			err:      errors.New(`binary "mpv" not found`),
			expected: `Failed to load player runtime: binary "mpv" not found`,
		},
		{
			name:     "widget operation",
			op:       OpWidgetStart,
			err:      errors.New("container not found"),
			expected: "Failed to start player: container not found",
		},
		{
			name:     "catalog operation",
			op:       OpEpisodesLoad,
			err:      errors.New("duplicate episode id 1"),
			expected: "Failed to load episodes: duplicate episode id 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlayback,
			context:  "podcast-player-1",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlayback,
			context:  "",
			err:      errors.New("ipc closed"),
			expected: "Failed to control playback: ipc closed",
		},
		{
			name:     "with context",
			op:       OpPlayback,
			context:  "podcast-player-1",
			err:      errors.New("ipc closed"),
			expected: "Failed to control playback 'podcast-player-1': ipc closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}
