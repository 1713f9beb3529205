package regions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcrawl/internal/core"
	"gridcrawl/pkg/crawler"
	"gridcrawl/pkg/grid"
)

// checker is
//
//	1 0 1
//	0 1 0
//	1 0 1
func checker(t *testing.T) *grid.Grid[uint8] {
	t.Helper()
	g, err := grid.NewGenerated(3, 3, func(r, c int) uint8 { return uint8((r + c + 1) % 2) })
	require.NoError(t, err)
	return g
}

func coords(cells []*grid.Cell[uint8]) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.Row(), c.Column()}
	}
	return out
}

func start(t *testing.T, g *grid.Grid[uint8], r, c int) *grid.Cell[uint8] {
	t.Helper()
	cell, err := g.Get(r, c)
	require.NoError(t, err)
	return cell
}

func TestOrthogonalFill(t *testing.T) {
	g := checker(t)
	c := crawler.New(g, New(DefaultConfig()))

	require.NoError(t, c.Crawl(context.Background(), start(t, g, 1, 1)))

	assert.Equal(t, [][2]int{{1, 1}}, coords(c.Flagged(FlagRegion)))
	assert.ElementsMatch(t, [][2]int{{0, 1}, {1, 2}, {2, 1}, {1, 0}}, coords(c.Flagged(FlagBorder)))
}

func TestDiagonalFill(t *testing.T) {
	g := checker(t)
	c := crawler.New(g, New(FromMap(map[string]string{"diagonal": "true"})))

	_, err := c.StartCrawling(context.Background(), start(t, g, 0, 0))
	require.NoError(t, err)
	require.NoError(t, c.BlockUntilFinished())

	assert.ElementsMatch(t, [][2]int{{0, 0}, {0, 2}, {1, 1}, {2, 0}, {2, 2}}, coords(c.Flagged(FlagRegion)))
	assert.Len(t, c.Flagged(FlagBorder), 4)
}

func TestEmptyCellsFormRegions(t *testing.T) {
	g, err := grid.New[uint8](2, 3)
	require.NoError(t, err)
	require.True(t, g.Store(4, 0, 1))
	require.True(t, g.Store(4, 1, 1))
	c := crawler.New(g, New(DefaultConfig()))

	require.NoError(t, c.Crawl(context.Background(), start(t, g, 0, 0)))

	assert.ElementsMatch(t, [][2]int{{0, 0}, {1, 0}}, coords(c.Flagged(FlagRegion)))
	assert.ElementsMatch(t, [][2]int{{0, 1}, {1, 1}}, coords(c.Flagged(FlagBorder)))
}

func TestMaxCells(t *testing.T) {
	g, err := grid.NewFilled[uint8](10, 10, 3)
	require.NoError(t, err)
	c := crawler.New(g, New(FromMap(map[string]string{"max_cells": "7", "diagonal": "nope"})))

	require.NoError(t, c.Crawl(context.Background(), start(t, g, 5, 5)))
	assert.Len(t, c.Flagged(FlagRegion), 7)
}

func TestStopState(t *testing.T) {
	g, err := grid.NewFilled[uint8](10, 10, 3)
	require.NoError(t, err)
	c := crawler.New(g, New(DefaultConfig()))
	c.SetGlobalState(core.StopState)

	require.NoError(t, c.Crawl(context.Background(), start(t, g, 0, 0)))
	assert.Empty(t, c.Flagged(FlagRegion))
}

func TestCancelledContext(t *testing.T) {
	g, err := grid.NewFilled[uint8](4, 4, 1)
	require.NoError(t, err)
	c := crawler.New(g, New(DefaultConfig()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = c.Crawl(ctx, start(t, g, 0, 0))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistered(t *testing.T) {
	f, err := core.Lookup("regions")
	require.NoError(t, err)
	assert.IsType(t, &Walk{}, f(map[string]string{"max_cells": "2"}))
}
