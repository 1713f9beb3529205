// Package regions flood-fills the connected region of equal values around a
// start cell, one subcrawler per visited cell.
package regions

import (
	"context"
	"strconv"

	"gridcrawl/internal/core"
	"gridcrawl/pkg/crawler"
	"gridcrawl/pkg/grid"
)

// Flags set by the walk.
const (
	FlagRegion = 1
	FlagBorder = 2
)

// Config holds parameters for the region walk.
type Config struct {
	// Diagonal also follows the four corner neighbors.
	Diagonal bool
	// MaxCells stops the fill once this many region cells were flagged; 0 means no limit.
	MaxCells int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["diagonal"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Diagonal = parsed
		}
	}
	if v, ok := cfg["max_cells"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxCells = parsed
		}
	}
	return c
}

// Walk is the region fill visitor.
type Walk struct {
	cfg Config
}

// New returns a region walk.
func New(cfg Config) *Walk {
	return &Walk{cfg: cfg}
}

type fill struct {
	cfg     Config
	want    uint8
	empty   bool
	visited map[*grid.Cell[uint8]]bool
	count   int
}

// Visit flags the region containing start under FlagRegion and its outer
// boundary under FlagBorder. Each subcrawler records its recursion depth in
// its state.
func (w *Walk) Visit(ctx context.Context, scope *crawler.Scope[uint8], start *grid.Cell[uint8]) error {
	want, ok := start.Get()
	f := &fill{cfg: w.cfg, want: want, empty: !ok, visited: make(map[*grid.Cell[uint8]]bool)}
	return scope.Spawn(crawler.SubVisitorFunc[uint8](f.step)).Start(ctx, start)
}

func (f *fill) matches(c *grid.Cell[uint8]) bool {
	v, ok := c.Get()
	if f.empty {
		return !ok
	}
	return ok && v == f.want
}

func (f *fill) step(ctx context.Context, sub *crawler.Subcrawler[uint8], cell *grid.Cell[uint8]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sub.GlobalState() == core.StopState {
		return nil
	}
	if f.visited[cell] {
		return nil
	}
	if f.cfg.MaxCells > 0 && f.count >= f.cfg.MaxCells {
		return nil
	}
	f.visited[cell] = true
	if !f.matches(cell) {
		sub.Flag(FlagBorder, cell)
		return nil
	}
	sub.Flag(FlagRegion, cell)
	f.count++

	next, err := sub.Grid().AdjacentsOf(cell, true)
	if err != nil {
		return err
	}
	if f.cfg.Diagonal {
		corners, err := sub.Grid().DiagonalAdjacentsOf(cell, true)
		if err != nil {
			return err
		}
		next = append(next, corners...)
	}
	for _, n := range next {
		child := sub.Spawn(crawler.SubVisitorFunc[uint8](f.step))
		child.SetState(sub.State() + 1)
		if err := child.Start(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	core.Register("regions", func(cfg map[string]string) crawler.Visitor[uint8] {
		return New(FromMap(cfg))
	})
}
