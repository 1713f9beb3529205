package main

import (
	"github.com/spf13/cobra"

	"gridcrawl/internal/app"
	"gridcrawl/internal/core"
)

func newViewCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive viewer",
		Long: `View opens a window showing the grid. Click a cell to crawl from it,
press S to stop the walk, R to reseed and Q or Esc to quit.

The viewer is only available in builds made with -tags ebiten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, err := core.Lookup(e.cfg.Walk)
			if err != nil {
				return err
			}
			return app.Run(e.cfg, factory, e.logger)
		},
	}
}
