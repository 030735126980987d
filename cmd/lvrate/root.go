package main

import (
	"log/slog"

	"github.com/katalvlaran/lvrate/config"
	"github.com/spf13/cobra"
)

// app carries state resolved once per invocation by the root command.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvrate",
		Short: "Pairwise ratings and 1PL item response tools",
		Long: `lvrate fits Elo-style ratings to game results, renders results as
Graphviz graphs, simulates and fits one-parameter IRT data, and checks
analytic gradients against finite differences.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	root.AddCommand(
		newGraphCmd(a),
		newEloCmd(a),
		newIRTCmd(a),
		newCheckCmd(a),
		newTournamentCmd(a),
		newChainCmd(a),
	)

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configuration loaded", "path", a.configPath, "seed", cfg.Seed)

	return nil
}
