package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/phat/internal/config"
	"github.com/katalvlaran/phat/internal/dataset"
	"github.com/katalvlaran/phat/internal/logging"
	"github.com/katalvlaran/phat/internal/report"
	"github.com/katalvlaran/phat/surprisal"
)

// version is set at build time via -ldflags.
var version = "dev"

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	v          *viper.Viper
	configPath string

	cfg     *config.Config
	mode    report.Mode
	logger  *slog.Logger
	cleanup func() error
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "phat",
		Short: "Pathway histograms of Markov-chain trajectories",
		Long: "phat builds surprisal graphs from transition matrices, erases loops,\n" +
			"extracts fundamental sequences and aggregates trajectories into\n" +
			"weighted pathway histograms.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.cleanup != nil {
				return a.cleanup()
			}
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file")
	f.Int("workers", 4, "histogram worker goroutines")
	f.String("format", "ascii", "table format: ascii or markdown")
	f.Float64("tolerance", 0, "row-sum and detailed-balance tolerance (0 keeps the default)")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.String("log-file", "", "also write JSON logs to this file")

	for key, flag := range map[string]string{
		"workers":   "workers",
		"format":    "format",
		"log.level": "log-level",
		"log.file":  "log-file",
	} {
		_ = a.v.BindPFlag(key, f.Lookup(flag))
	}

	root.AddCommand(newGraphCmd(a), newEraseCmd(a), newFundamentalCmd(a), newHistogramCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if tol, _ := cmd.Flags().GetFloat64("tolerance"); tol != 0 {
		a.v.Set("tolerance", tol)
	}
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	if a.mode, err = report.ParseMode(cfg.Format); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger, a.cleanup = logging.Setup(cmd.ErrOrStderr(), cfg.Log.File, cfg.SlogLevel())
	a.logger.Debug("config loaded", "workers", cfg.Workers, "format", cfg.Format, "tolerance", cfg.Tolerance)

	return nil
}

// load reads the dataset at path and builds its surprisal graph.
func (a *app) load(path string) (*dataset.Dataset, *surprisal.Graph[string], error) {
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := ds.Graph(surprisal.WithTolerance(a.cfg.Tolerance))
	if err != nil {
		return nil, nil, fmt.Errorf("build surprisal graph: %w", err)
	}
	a.logger.Info("surprisal graph built",
		"dataset", path,
		"states", len(g.Nodes()),
		"edges", g.EdgeCount(),
		"symmetrized", g.Symmetrized(),
	)

	return ds, g, nil
}
