package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "podcards"

type Config struct {
	MPVPath      string `koanf:"mpv_path"`      // empty means look up "mpv" in $PATH
	YtdlpPath    string `koanf:"ytdlp_path"`    // empty means look up "yt-dlp" in $PATH
	Host         string `koanf:"host"`          // widget host, e.g. "https://www.youtube-nocookie.com"
	Origin       string `koanf:"origin"`        // origin announced to the provider
	EpisodesFile string `koanf:"episodes_file"` // TOML file with [[episodes]]; empty uses built-in list
	RuntimeDir   string `koanf:"runtime_dir"`   // where per-card IPC sockets live
	Icons        string `koanf:"icons"`         // "nerd", "unicode" or "none" (default: "unicode")

	// MPRIS media key integration (linux only, default: true)
	MPRIS         *bool `koanf:"mpris"`
	// Desktop notifications on play and load failure (default: true)
	Notifications *bool `koanf:"notifications"`

	Log LogConfig `koanf:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"`  // "debug", "info", "warn", "error" (default: "info")
	Format string `koanf:"format"` // "text" or "json" (default: "text")
	File   string `koanf:"file"`   // log file path, "off" disables logging
}

const (
	DefaultHost   = "https://www.youtube-nocookie.com"
	DefaultOrigin = "https://podcards.local"
)

// Load reads the config files. extra, if not empty, is loaded last and must
// exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MPVPath = expandPath(cfg.MPVPath)
	cfg.YtdlpPath = expandPath(cfg.YtdlpPath)
	cfg.EpisodesFile = expandPath(cfg.EpisodesFile)
	cfg.RuntimeDir = expandPath(cfg.RuntimeDir)
	cfg.Log.File = expandPath(cfg.Log.File)

	// Normalize host (remove trailing slash)
	cfg.Host = strings.TrimSuffix(cfg.Host, "/")

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/podcards/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetHost returns the widget host with the default applied.
func (c *Config) GetHost() string {
	if c.Host == "" {
		return DefaultHost
	}
	return c.Host
}

// GetOrigin returns the announced origin with the default applied.
func (c *Config) GetOrigin() string {
	if c.Origin == "" {
		return DefaultOrigin
	}
	return c.Origin
}

// GetRuntimeDir returns the socket directory, defaulting to
// $XDG_RUNTIME_DIR/podcards.
func (c *Config) GetRuntimeDir() string {
	if c.RuntimeDir != "" {
		return c.RuntimeDir
	}
	return filepath.Join(xdg.RuntimeDir, appName)
}

// MPRISEnabled returns true unless MPRIS was explicitly disabled.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// NotificationsEnabled returns true unless notifications were explicitly
// disabled.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// GetLogConfig returns the logging configuration with defaults applied.
// An empty File after defaults means logging is disabled.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	switch strings.ToLower(cfg.File) {
	case "off", "none":
		cfg.File = ""
	case "":
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	return cfg
}
