// Package lines flags runs of equal values along the row, the column and the
// two diagonals through a start cell.
package lines

import (
	"context"
	"strconv"

	"gridcrawl/internal/core"
	"gridcrawl/pkg/crawler"
	"gridcrawl/pkg/grid"
)

// Flags set by the walk, one per direction.
const (
	FlagRow = iota + 1
	FlagColumn
	FlagDiagonalDesc
	FlagDiagonalAsc
)

// Config holds parameters for the line walk.
type Config struct {
	// MinRun is the shortest run that gets flagged.
	MinRun int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{MinRun: 3}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["min_run"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinRun = parsed
		}
	}
	return c
}

// Walk is the line scan visitor.
type Walk struct {
	cfg Config
}

// New returns a line walk.
func New(cfg Config) *Walk {
	return &Walk{cfg: cfg}
}

// Visit runs one subcrawler per direction. The subcrawler's state holds the
// flag of the direction it scans.
func (w *Walk) Visit(ctx context.Context, scope *crawler.Scope[uint8], start *grid.Cell[uint8]) error {
	for _, flag := range []int{FlagRow, FlagColumn, FlagDiagonalDesc, FlagDiagonalAsc} {
		if scope.GlobalState() == core.StopState {
			return nil
		}
		sub := scope.Spawn(crawler.SubVisitorFunc[uint8](w.scan))
		sub.SetState(flag)
		if err := sub.Start(ctx, start); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walk) scan(ctx context.Context, sub *crawler.Subcrawler[uint8], start *grid.Cell[uint8]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line, err := lineThrough(sub.Grid(), sub.State(), start)
	if err != nil {
		return err
	}
	run := runAround(line, start)
	if len(run) >= w.cfg.MinRun {
		sub.Flag(sub.State(), run...)
	}
	return nil
}

func lineThrough(g *grid.Grid[uint8], flag int, c *grid.Cell[uint8]) ([]*grid.Cell[uint8], error) {
	switch flag {
	case FlagRow:
		return g.RowOf(c)
	case FlagColumn:
		return g.ColumnOf(c)
	case FlagDiagonalDesc:
		return g.DiagonalDescOf(c)
	default:
		return g.DiagonalAscOf(c)
	}
}

// runAround returns the maximal stretch of line holding the same value as
// start, start included. Empty cells never form a run.
func runAround(line []*grid.Cell[uint8], start *grid.Cell[uint8]) []*grid.Cell[uint8] {
	want, ok := start.Get()
	if !ok {
		return nil
	}
	pos := -1
	for i, c := range line {
		if c == start {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil
	}
	same := func(c *grid.Cell[uint8]) bool {
		v, ok := c.Get()
		return ok && v == want
	}
	lo, hi := pos, pos
	for lo > 0 && same(line[lo-1]) {
		lo--
	}
	for hi < len(line)-1 && same(line[hi+1]) {
		hi++
	}
	return line[lo : hi+1]
}

func init() {
	core.Register("lines", func(cfg map[string]string) crawler.Visitor[uint8] {
		return New(FromMap(cfg))
	})
}
