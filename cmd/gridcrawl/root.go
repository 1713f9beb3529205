package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gridcrawl/internal/config"
	"gridcrawl/internal/logging"

	_ "gridcrawl/internal/walks/lines"
	_ "gridcrawl/internal/walks/regions"
)

// Version is the gridcrawl release.
const Version = "v0.1.0"

// env is the state shared by every subcommand, resolved in PersistentPreRunE.
type env struct {
	configFile string
	dev        bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "gridcrawl",
		Short: "gridcrawl runs crawlers over generated grids",
		Long: `gridcrawl builds a grid from a seed, then walks it from a start cell
with one of the registered walks and reports the flagged cells.

Settings come from flags, GRIDCRAWL_* environment variables and an optional
config file, in that order of precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "walks" {
				return nil
			}
			cfg, err := config.Load(e.configFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := logging.New(cfg.LogLevel, e.dev)
			if err != nil {
				return err
			}
			e.cfg, e.logger = cfg, logger
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.configFile, "config", "", "config file (yaml, toml or json)")
	pf.BoolVar(&e.dev, "dev", false, "human-readable development logging")
	config.NewConfig().Bind(pf)

	root.AddCommand(newRunCmd(e))
	root.AddCommand(newViewCmd(e))
	root.AddCommand(newWalksCmd())
	root.AddCommand(newVersionCmd())
	return root
}
