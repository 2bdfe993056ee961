package mpv

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/llehouerou/podcards/internal/embed"
	"github.com/llehouerou/podcards/internal/logging"
)

// process is the running mpv instance behind a widget.
type process interface {
	Wait() error
	Kill() error
}

// launcher starts mpv with the given arguments.
type launcher func(path string, args []string) (process, error)

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Wait() error { return p.cmd.Wait() }

func (p *execProcess) Kill() error { return p.cmd.Process.Kill() }

func execLauncher(path string, args []string) (process, error) {
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

// Provider builds mpv-backed widgets.
type Provider struct {
	rt     *Runtime
	launch launcher
	logger *slog.Logger
}

// NewProvider creates a provider using binaries resolved by rt.
func NewProvider(rt *Runtime, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Provider{
		rt:     rt,
		launch: execLauncher,
		logger: logger.With(logging.FieldComponent, "mpv"),
	}
}

// NewWidget starts one mpv process for the container. Ready and state
// notifications arrive later on the widget's dispatcher goroutine.
func (p *Provider) NewWidget(c embed.Container, opts embed.Options, ev embed.Events) (embed.Widget, error) {
	mpvPath := p.rt.MPVPath()
	if mpvPath == "" {
		return nil, embed.ErrNotLoaded
	}
	if err := os.MkdirAll(c.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("create container dir: %w", err)
	}

	socket := filepath.Join(c.Dir, "mpv-"+uuid.NewString()[:8]+".sock")
	args := buildArgs(socket, opts, p.rt.YtdlpPath())

	proc, err := p.launch(mpvPath, args)
	if err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}

	logger := p.logger.With(
		logging.FieldContainerID, c.ID,
		logging.FieldContentID, opts.ContentID,
	)
	w := newWidget(proc, socket, contentURL(opts), ev, logger)
	go w.run()
	return w, nil
}

// contentURL is the embed page for the content on the configured host.
func contentURL(opts embed.Options) string {
	host := strings.TrimSuffix(opts.Host, "/")
	if host == "" {
		host = embed.DefaultHost
	}
	return host + "/embed/" + opts.ContentID
}

// buildArgs maps widget options onto mpv flags.
func buildArgs(socket string, opts embed.Options, ytdlp string) []string {
	args := []string{
		"--idle=yes",
		"--no-video",
		"--no-terminal",
		"--keep-open=yes",
		"--input-ipc-server=" + socket,
	}
	vars := opts.PlayerVars
	if !vars.Autoplay {
		args = append(args, "--pause=yes")
	}
	if vars.InlinePlayback {
		args = append(args, "--force-window=no")
	}
	if !vars.RelatedContent {
		args = append(args, "--ytdl-raw-options-append=no-playlist=")
	}
	if vars.Origin != "" {
		args = append(args,
			"--referrer="+vars.Origin,
			"--http-header-fields-append=Origin: "+vars.Origin,
		)
	}
	if ytdlp != "" {
		args = append(args, "--script-opts-append=ytdl_hook-ytdl_path="+ytdlp)
	}
	return args
}

// Verify Provider implements embed.Provider at compile time.
var _ embed.Provider = (*Provider)(nil)
