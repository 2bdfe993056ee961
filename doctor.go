package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/podcards/internal/catalog"
	"github.com/llehouerou/podcards/internal/config"
	"github.com/llehouerou/podcards/internal/deps"
)

func newDoctorCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the external binaries and paths podcards relies on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return runDoctor(cmd.OutOrStdout(), cfg)
		},
	}
}

func runDoctor(w io.Writer, cfg *config.Config) error {
	statuses := deps.CheckBinaries(deps.Runtime(cfg.MPVPath, cfg.YtdlpPath))
	fmt.Fprintln(w, renderTable(
		[]string{"Binary", "Status", "Location", "Purpose"},
		dependencyRows(statuses),
		nil,
	))

	episodes := "built-in"
	if eps, err := catalog.Load(cfg.EpisodesFile); err != nil {
		episodes = "error: " + err.Error()
	} else if cfg.EpisodesFile != "" {
		episodes = fmt.Sprintf("%s (%d)", cfg.EpisodesFile, len(eps))
	}

	logFile := cfg.GetLogConfig().File
	if logFile == "" {
		logFile = "off"
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Setting", "Value"},
		[][]string{
			{"episodes", episodes},
			{"runtime_dir", cfg.GetRuntimeDir()},
			{"host", cfg.GetHost()},
			{"origin", cfg.GetOrigin()},
			{"log", logFile},
		},
		nil,
	))

	return deps.Missing(statuses)
}

func dependencyRows(statuses []deps.Status) [][]string {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		state := "ok"
		location := s.Path
		if !s.Available {
			state = "missing"
			if s.Optional {
				state = "missing (optional)"
			}
			location = s.Detail
		}
		rows = append(rows, []string{s.Name, state, location, s.Description})
	}
	return rows
}
