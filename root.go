package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/llehouerou/podcards/internal/config"
	"github.com/llehouerou/podcards/internal/errmsg"
)

type options struct {
	configPath   string
	episodesPath string
}

func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if o.episodesPath != "" {
		cfg.EpisodesFile = o.episodesPath
	}
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "podcards",
		Short:         "Browse podcast episodes as cards and play them in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&opts.episodesPath, "episodes", "e", "", "Episodes TOML file (overrides episodes_file)")

	rootCmd.AddCommand(newDoctorCommand(opts))

	return rootCmd
}
