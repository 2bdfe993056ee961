//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/podcasts",
			expected: filepath.Join(home, "podcasts"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/podcasts/episodes.toml",
			expected: filepath.Join(home, "podcasts", "episodes.toml"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/bin/mpv",
			expected: "/usr/bin/mpv",
		},
		{
			name:     "relative path unchanged",
			input:    "bin/mpv",
			expected: "bin/mpv",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(xdg.ConfigHome, "podcards", "config.toml"), paths[0])
	assert.Equal(t, "config.toml", paths[len(paths)-1])
}

func TestLoad_ExtraFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "podcards.toml")
	data := `
mpv_path = "/opt/mpv/bin/mpv"
host = "https://example.test/"
episodes_file = "/srv/episodes.toml"
mpris = false
notifications = false

[log]
level = "debug"
file = "off"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/mpv/bin/mpv", cfg.MPVPath)
	assert.Equal(t, "https://example.test", cfg.GetHost())
	assert.Equal(t, "/srv/episodes.toml", cfg.EpisodesFile)
	assert.False(t, cfg.MPRISEnabled())
	assert.False(t, cfg.NotificationsEnabled())

	logCfg := cfg.GetLogConfig()
	assert.Equal(t, "debug", logCfg.Level)
	assert.Empty(t, logCfg.File)
}

func TestLoad_MissingExtraFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, DefaultHost, cfg.GetHost())
	assert.Equal(t, DefaultOrigin, cfg.GetOrigin())
	assert.Equal(t, filepath.Join(xdg.RuntimeDir, "podcards"), cfg.GetRuntimeDir())
	assert.True(t, cfg.MPRISEnabled())
	assert.True(t, cfg.NotificationsEnabled())

	logCfg := cfg.GetLogConfig()
	assert.Equal(t, "info", logCfg.Level)
	assert.Equal(t, "text", logCfg.Format)
	assert.Equal(t, filepath.Join(xdg.StateHome, "podcards", "podcards.log"), logCfg.File)
}

func TestGetRuntimeDir_Configured(t *testing.T) {
	cfg := &Config{RuntimeDir: "/tmp/podcards"}
	assert.Equal(t, "/tmp/podcards", cfg.GetRuntimeDir())
}
