package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"gridcrawl/internal/app"
	"gridcrawl/internal/config"
	"gridcrawl/internal/core"
	"gridcrawl/internal/render"
	"gridcrawl/pkg/crawler"
	"gridcrawl/pkg/grid"
)

// report is the yaml form of a finished run.
type report struct {
	Walk    string       `yaml:"walk"`
	Seed    int64        `yaml:"seed"`
	Height  int          `yaml:"height"`
	Width   int          `yaml:"width"`
	Start   [2]int       `yaml:"start,flow"`
	Elapsed string       `yaml:"elapsed"`
	Stopped bool         `yaml:"stopped,omitempty"`
	Flags   []flagReport `yaml:"flags"`
}

type flagReport struct {
	Flag  int      `yaml:"flag"`
	Count int      `yaml:"count"`
	Cells [][2]int `yaml:"cells,flow"`
}

func newRunCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Crawl a generated grid and print the flagged cells",
		Long: `Run builds the configured grid, crawls it in the background from
(start-row, start-col) and waits for the walk to finish. Interrupting with
Ctrl-C stops the walk and prints what was flagged so far.

Example:
  gridcrawl run --walk regions --width 40 --height 20 --passes 3
  gridcrawl run --walk lines --params min_run=4 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWalk(ctx, e.cfg, e.logger, cmd.OutOrStdout())
		},
	}
}

func runWalk(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	factory, err := core.Lookup(cfg.Walk)
	if err != nil {
		return err
	}
	g, err := app.NewWorld(cfg)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	start, err := g.Get(cfg.StartRow, cfg.StartCol)
	if err != nil {
		return err
	}

	c := crawler.New(g, factory(cfg.Params), crawler.WithLogger(logger))
	began := time.Now()
	if _, err := c.StartCrawling(ctx, start); err != nil {
		return err
	}
	stopped := false
	if err := c.BlockUntilFinished(); err != nil {
		if !errors.Is(err, crawler.ErrStopped) {
			return fmt.Errorf("walk %s: %w", cfg.Walk, err)
		}
		stopped = true
	}
	elapsed := time.Since(began)

	var flags []int
	flagged := make(map[int][]*grid.Cell[uint8])
	for _, f := range c.Flags() {
		if f < 0 {
			continue
		}
		flags = append(flags, f)
		flagged[f] = c.Flagged(f)
	}

	if cfg.Format == "yaml" {
		r := report{
			Walk:    cfg.Walk,
			Seed:    cfg.Seed,
			Height:  cfg.Height,
			Width:   cfg.Width,
			Start:   [2]int{cfg.StartRow, cfg.StartCol},
			Elapsed: elapsed.String(),
			Stopped: stopped,
			Flags:   make([]flagReport, 0, len(flags)),
		}
		for _, f := range flags {
			fr := flagReport{Flag: f, Count: len(flagged[f]), Cells: make([][2]int, len(flagged[f]))}
			for i, cell := range flagged[f] {
				fr.Cells[i] = [2]int{cell.Row(), cell.Column()}
			}
			r.Flags = append(r.Flags, fr)
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprint(out, render.Text(g, flags, flagged))
	for _, f := range flags {
		fmt.Fprintf(out, "flag %d: %d cells\n", f, len(flagged[f]))
	}
	if stopped {
		fmt.Fprintln(out, "stopped early")
	}
	return nil
}
