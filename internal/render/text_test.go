package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcrawl/pkg/grid"
)

func TestText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	g, err := grid.NewGenerated(2, 3, func(r, c int) uint8 { return uint8(r*3 + c) })
	require.NoError(t, err)
	require.True(t, g.Remove(0, 0))
	a, _ := g.Get(0, 2)
	b, _ := g.Get(1, 1)

	out := Text(g, []int{1, 2}, map[int][]*grid.Cell[uint8]{1: {a}, 2: {a, b}})

	assert.Equal(t, ".1#\n3#5\n", out)
}
