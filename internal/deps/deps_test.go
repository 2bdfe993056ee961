package deps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	require.NoError(t, os.WriteFile(present, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	results := CheckBinaries([]Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Empty", Command: "  "},
	})
	require.Len(t, results, 3)

	assert.True(t, results[0].Available)
	assert.Equal(t, present, results[0].Path)
	assert.Empty(t, results[0].Detail)

	assert.False(t, results[1].Available)
	assert.Contains(t, results[1].Detail, "clearly-not-present-binary")

	assert.False(t, results[2].Available)
	assert.Equal(t, "command not configured", results[2].Detail)
}

func TestRuntimeDefaults(t *testing.T) {
	reqs := Runtime("", "")
	require.Len(t, reqs, 2)
	assert.Equal(t, "mpv", reqs[0].Command)
	assert.Equal(t, "yt-dlp", reqs[1].Command)

	reqs = Runtime("/opt/mpv", "/opt/yt-dlp")
	assert.Equal(t, "/opt/mpv", reqs[0].Command)
	assert.Equal(t, "/opt/yt-dlp", reqs[1].Command)
}

func TestMissing(t *testing.T) {
	assert.NoError(t, Missing([]Status{{Available: true}, {Optional: true}}))

	err := Missing([]Status{
		{Available: true},
		{Detail: `binary "mpv" not found`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mpv")
}
