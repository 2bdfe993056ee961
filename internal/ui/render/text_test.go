package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"keeps newline", "a\nb", "a\nb"},
		{"drops escape", "a\x1b[31mb", "a[31mb"},
		{"nbsp to space", "a\u00a0b", "a b"},
		{"invalid utf8", "a\xffb", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 10)
	assert.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(l), 10, "line %q", l)
	}
	assert.Equal(t, "the quick brown fox jumps over the lazy dog",
		strings.Join(strings.Fields(strings.Join(lines, " ")), " "))

	assert.Nil(t, Wrap("", 10))
}

func TestClamp(t *testing.T) {
	lines := []string{"one", "two", "three"}

	assert.Equal(t, lines, Clamp(lines, 3, 10))
	assert.Equal(t, []string{"one", "two…"}, Clamp(lines, 2, 10))
	assert.Nil(t, Clamp(lines, 0, 10))
	assert.Equal(t, []string{"tw…"}, Clamp([]string{"two", "x"}, 1, 3))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "ab   cd", Row("ab", "cd", 7))
	assert.Equal(t, "abc d", Row("abc", "d", 2))
}
