// Package mpv provides the widget runtime backed by mpv and yt-dlp.
//
// Every card gets its own mpv process controlled over mpv's JSON IPC
// socket. The runtime itself is loaded once per process: the binaries are
// located and mpv is probed before any widget is built.
package mpv

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/llehouerou/podcards/internal/deps"
	"github.com/llehouerou/podcards/internal/embed"
	"github.com/llehouerou/podcards/internal/logging"
)

const probeTimeout = 10 * time.Second

// RuntimeConfig names the binaries to drive. Empty values use $PATH.
type RuntimeConfig struct {
	MPVPath   string
	YtdlpPath string
}

// Runtime locates and probes mpv once.
type Runtime struct {
	cfg    RuntimeConfig
	logger *slog.Logger

	mu      sync.RWMutex
	loaded  bool
	mpv     string
	ytdlp   string
	version string
}

// NewRuntime creates an mpv runtime.
func NewRuntime(cfg RuntimeConfig, logger *slog.Logger) *Runtime {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runtime{
		cfg:    cfg,
		logger: logger.With(logging.FieldComponent, "mpv-runtime"),
	}
}

// Present reports whether a previous load already verified the binaries.
func (r *Runtime) Present() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Load resolves the binaries and probes mpv, then calls ready.
func (r *Runtime) Load(ready func(error)) {
	ready(r.load())
}

func (r *Runtime) load() error {
	statuses := deps.CheckBinaries(deps.Runtime(r.cfg.MPVPath, r.cfg.YtdlpPath))
	if err := deps.Missing(statuses); err != nil {
		return fmt.Errorf("%w: %w", embed.ErrRuntimeUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	mpvPath := statuses[0].Path
	out, err := exec.CommandContext(ctx, mpvPath, "--version").Output()
	if err != nil {
		return fmt.Errorf("probe %s: %w", mpvPath, err)
	}
	version := firstLine(out)

	r.mu.Lock()
	r.loaded = true
	r.mpv = mpvPath
	r.ytdlp = statuses[1].Path
	r.version = version
	r.mu.Unlock()

	r.logger.Info("mpv runtime ready", "path", mpvPath, "version", version)
	return nil
}

// MPVPath returns the resolved mpv binary. Empty until loaded.
func (r *Runtime) MPVPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mpv
}

// YtdlpPath returns the resolved yt-dlp binary. Empty until loaded.
func (r *Runtime) YtdlpPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ytdlp
}

// Version returns the first line of `mpv --version`.
func (r *Runtime) Version() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func firstLine(b []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(b))
	if sc.Scan() {
		return strings.TrimSpace(sc.Text())
	}
	return ""
}

// Verify Runtime implements embed.Runtime at compile time.
var _ embed.Runtime = (*Runtime)(nil)
