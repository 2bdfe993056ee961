package main

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/llehouerou/podcards/internal/app"
	"github.com/llehouerou/podcards/internal/catalog"
	"github.com/llehouerou/podcards/internal/config"
	"github.com/llehouerou/podcards/internal/embed"
	"github.com/llehouerou/podcards/internal/embed/mpv"
	"github.com/llehouerou/podcards/internal/errmsg"
	"github.com/llehouerou/podcards/internal/icons"
	"github.com/llehouerou/podcards/internal/logging"
	"github.com/llehouerou/podcards/internal/mpris"
	"github.com/llehouerou/podcards/internal/notify"
)

var errNoTerminal = errors.New("podcards needs an interactive terminal (try `podcards doctor`)")

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runTUI(ctx context.Context, cfg *config.Config) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNoTerminal
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logCfg := cfg.GetLogConfig()
	logger, closer, err := logging.New(logging.Options{
		Level:  logCfg.Level,
		Format: logCfg.Format,
		Path:   logCfg.File,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer closer.Close()

	icons.Init(cfg.Icons)

	episodes, err := catalog.Load(cfg.EpisodesFile)
	if err != nil {
		logger.Error("episodes unavailable", "error", err)
		return errors.New(errmsg.FormatWith(errmsg.OpEpisodesLoad, cfg.EpisodesFile, err))
	}

	rt := mpv.NewRuntime(mpv.RuntimeConfig{MPVPath: cfg.MPVPath, YtdlpPath: cfg.YtdlpPath}, logger)
	loader := embed.Shared(rt, logger)
	doc := embed.NewDocument(cfg.GetRuntimeDir())
	factory := embed.NewFactory(doc, loader, mpv.NewProvider(rt, logger), embed.FactoryConfig{
		Host:   cfg.GetHost(),
		Origin: cfg.GetOrigin(),
	}, logger)

	session := app.NewSession(episodes, app.Deps{
		Loader:   loader,
		Builder:  factory,
		Document: doc,
		Logger:   logger,
	})
	defer session.Close()

	model := app.New(ctx, episodes, session)

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(session)
		if err != nil {
			logger.Warn("mpris unavailable", "error", err)
			model.ErrorMsg = errmsg.Format(errmsg.OpMPRISStart, err)
		} else {
			defer adapter.Close()
		}
	}

	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err == nil {
			model.Notifier = n
		}
	}

	logger.Info("starting podcards", "episodes", len(episodes), "runtime_dir", cfg.GetRuntimeDir())

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
