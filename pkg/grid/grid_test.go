package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numbered returns a grid where each cell holds row*width+column.
func numbered(t *testing.T, height, width int) *Grid[int] {
	t.Helper()
	g, err := NewGenerated(height, width, func(r, c int) int { return r*width + c })
	require.NoError(t, err)
	return g
}

func values(t *testing.T, cells []*Cell[int]) []int {
	t.Helper()
	out := make([]int, len(cells))
	for i, c := range cells {
		require.NotNil(t, c, "cell %d", i)
		v, ok := c.Get()
		require.True(t, ok, "cell (%d,%d) empty", c.Row(), c.Column())
		out[i] = v
	}
	return out
}

func TestConstructors(t *testing.T) {
	empty, err := New[string](2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, empty.Height())
	assert.Equal(t, 3, empty.Width())
	assert.Equal(t, 6, empty.Len())
	for _, c := range empty.Cells() {
		assert.True(t, c.IsEmpty())
	}

	filled, err := NewFilled(3, 2, "x")
	require.NoError(t, err)
	for _, c := range filled.Cells() {
		v, ok := c.Get()
		assert.True(t, ok)
		assert.Equal(t, "x", v)
	}

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {2, -5}} {
		_, err := New[int](dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		_, err = NewFilled(dims[0], dims[1], 1)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		_, err = NewGenerated(dims[0], dims[1], func(int, int) int { return 0 })
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestGetAddressesEveryCell(t *testing.T) {
	g := numbered(t, 3, 5)
	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			cell, err := g.Get(r, c)
			require.NoError(t, err)
			assert.Equal(t, r, cell.Row())
			assert.Equal(t, c, cell.Column())
			v, _ := cell.Get()
			assert.Equal(t, r*5+c, v)
		}
	}
}

func TestGetChecksRowAgainstHeight(t *testing.T) {
	// Non-square so a swapped axis check would be caught.
	g := numbered(t, 2, 4)

	_, err := g.Get(1, 3)
	assert.NoError(t, err)

	for _, rc := range [][2]int{{2, 0}, {0, 4}, {3, 1}, {-1, 0}, {0, -1}} {
		_, err := g.Get(rc[0], rc[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "get %v", rc)
		_, err = g.Adjacents(rc[0], rc[1], false)
		assert.ErrorIs(t, err, ErrOutOfRange, "adjacents %v", rc)
		_, err = g.DiagonalAdjacents(rc[0], rc[1], false)
		assert.ErrorIs(t, err, ErrOutOfRange, "diagonal adjacents %v", rc)
		_, err = g.DiagonalDesc(rc[0], rc[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "desc %v", rc)
		_, err = g.DiagonalAsc(rc[0], rc[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "asc %v", rc)
	}

	_, err = g.Row(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.Column(4)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.Column(3)
	assert.NoError(t, err)
}

func TestStore(t *testing.T) {
	g, err := New[int](3, 4)
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			require.True(t, g.Store(r+c, r, c))
			cell, err := g.Get(r, c)
			require.NoError(t, err)
			v, ok := cell.Get()
			require.True(t, ok)
			assert.Equal(t, r+c, v)
		}
	}

	// Overwriting a non-empty cell still succeeds.
	assert.True(t, g.Store(99, 0, 0))

	before := g.Values()
	for _, rc := range [][2]int{{3, 0}, {0, 4}, {-1, 0}, {0, -1}, {1, 4}} {
		assert.False(t, g.Store(7, rc[0], rc[1]), "store %v", rc)
	}
	assert.Equal(t, before, g.Values())
}

func TestReplace(t *testing.T) {
	g, err := New[int](2, 3)
	require.NoError(t, err)

	assert.False(t, g.Replace(5, 0, 0), "empty cell must not be replaced")
	cell, _ := g.Get(0, 0)
	assert.True(t, cell.IsEmpty())

	require.True(t, g.Store(1, 0, 0))
	assert.True(t, g.Replace(5, 0, 0))
	v, _ := cell.Get()
	assert.Equal(t, 5, v)

	require.True(t, g.Store(1, 1, 0))
	// (0,3) would alias (1,0) if only the flat index were checked.
	assert.False(t, g.Replace(9, 0, 3))
	// Index equal to the cell count.
	assert.False(t, g.Replace(9, 2, 0))
	other, _ := g.Get(1, 0)
	v, _ = other.Get()
	assert.Equal(t, 1, v)
}

func TestRemoveReportsPriorValue(t *testing.T) {
	g, err := New[string](2, 2)
	require.NoError(t, err)

	assert.False(t, g.Remove(0, 1), "nothing to remove")
	require.True(t, g.Store("a", 0, 1))
	assert.True(t, g.Remove(0, 1))

	cell, _ := g.Get(0, 1)
	assert.True(t, cell.IsEmpty())
	assert.False(t, g.Remove(0, 1), "second remove finds nothing")
	assert.False(t, g.Remove(5, 5))
}

func TestAdjacents(t *testing.T) {
	g := numbered(t, 3, 3)

	tests := []struct {
		name         string
		row          int
		column       int
		absent       int
		absentCorner int
	}{
		{name: "corner", row: 0, column: 0, absent: 2, absentCorner: 3},
		{name: "opposite corner", row: 2, column: 2, absent: 2, absentCorner: 3},
		{name: "edge", row: 0, column: 1, absent: 1, absentCorner: 2},
		{name: "side edge", row: 1, column: 2, absent: 1, absentCorner: 2},
		{name: "interior", row: 1, column: 1, absent: 0, absentCorner: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queries := []struct {
				fn     func(int, int, bool) ([]*Cell[int], error)
				absent int
			}{
				{fn: g.Adjacents, absent: tt.absent},
				{fn: g.DiagonalAdjacents, absent: tt.absentCorner},
			}
			for _, q := range queries {
				cells, err := q.fn(tt.row, tt.column, false)
				require.NoError(t, err)
				require.Len(t, cells, 4)
				missing := 0
				for _, c := range cells {
					if c == nil {
						missing++
					}
				}
				assert.Equal(t, q.absent, missing)

				compacted, err := q.fn(tt.row, tt.column, true)
				require.NoError(t, err)
				assert.Len(t, compacted, 4-q.absent)
				assert.NotContains(t, compacted, (*Cell[int])(nil))
			}
		})
	}
}

func TestAdjacentsOrder(t *testing.T) {
	g := numbered(t, 3, 3)

	cells, err := g.Adjacents(1, 1, false)
	require.NoError(t, err)
	got := map[int]int{}
	for slot, c := range cells {
		v, _ := c.Get()
		got[slot] = v
	}
	assert.Equal(t, map[int]int{Top: 1, Right: 5, Bottom: 7, Left: 3}, got)

	cells, err = g.DiagonalAdjacents(1, 1, false)
	require.NoError(t, err)
	got = map[int]int{}
	for slot, c := range cells {
		v, _ := c.Get()
		got[slot] = v
	}
	assert.Equal(t, map[int]int{TopLeft: 0, TopRight: 2, BottomRight: 8, BottomLeft: 6}, got)

	cells, err = g.Adjacents(0, 2, false)
	require.NoError(t, err)
	assert.Nil(t, cells[Top])
	assert.Nil(t, cells[Right])
	assert.NotNil(t, cells[Bottom])
	assert.NotNil(t, cells[Left])

	cells, err = g.AdjacentsOf(cells[Left], true)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{2, 4, 0}, values(t, cells)); diff != "" {
		t.Fatalf("adjacents of (0,1) mismatch (-want +got):\n%s", diff)
	}
}

func TestRowAndColumn(t *testing.T) {
	g := numbered(t, 3, 3)

	row, err := g.Row(1)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{3, 4, 5}, values(t, row)); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}

	col, err := g.Column(1)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{1, 4, 7}, values(t, col)); diff != "" {
		t.Fatalf("column mismatch (-want +got):\n%s", diff)
	}

	wide := numbered(t, 2, 4)
	center, _ := wide.Get(1, 2)
	row, err = wide.RowOf(center)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7}, values(t, row))
	col, err = wide.ColumnOf(center)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 6}, values(t, col))
}

func TestDiagonals(t *testing.T) {
	square := numbered(t, 3, 3)
	wide := numbered(t, 2, 4) // [0 1 2 3] [4 5 6 7]
	tall := numbered(t, 4, 2) // [0 1] [2 3] [4 5] [6 7]

	tests := []struct {
		name   string
		g      *Grid[int]
		row    int
		column int
		desc   []int
		asc    []int
	}{
		{name: "square center", g: square, row: 1, column: 1, desc: []int{0, 4, 8}, asc: []int{6, 4, 2}},
		{name: "square top right", g: square, row: 0, column: 2, desc: []int{2}, asc: []int{6, 4, 2}},
		{name: "square bottom left", g: square, row: 2, column: 0, desc: []int{6}, asc: []int{6, 4, 2}},
		{name: "square off diagonal", g: square, row: 1, column: 0, desc: []int{3, 7}, asc: []int{3, 1}},
		{name: "square lower off diagonal", g: square, row: 2, column: 1, desc: []int{3, 7}, asc: []int{7, 5}},
		{name: "wide right edge", g: wide, row: 1, column: 3, desc: []int{2, 7}, asc: []int{7}},
		{name: "wide middle", g: wide, row: 0, column: 1, desc: []int{1, 6}, asc: []int{4, 1}},
		{name: "wide top right", g: wide, row: 0, column: 3, desc: []int{3}, asc: []int{6, 3}},
		{name: "tall origin", g: tall, row: 0, column: 0, desc: []int{0, 3}, asc: []int{0}},
		{name: "tall bottom left", g: tall, row: 3, column: 0, desc: []int{6}, asc: []int{6, 5}},
		{name: "tall middle", g: tall, row: 2, column: 1, desc: []int{2, 5}, asc: []int{6, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := tt.g.DiagonalDesc(tt.row, tt.column)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.desc, values(t, desc)); diff != "" {
				t.Errorf("desc mismatch (-want +got):\n%s", diff)
			}
			asc, err := tt.g.DiagonalAsc(tt.row, tt.column)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.asc, values(t, asc)); diff != "" {
				t.Errorf("asc mismatch (-want +got):\n%s", diff)
			}

			cell, _ := tt.g.Get(tt.row, tt.column)
			descOf, err := tt.g.DiagonalDescOf(cell)
			require.NoError(t, err)
			assert.Equal(t, desc, descOf)
			ascOf, err := tt.g.DiagonalAscOf(cell)
			require.NoError(t, err)
			assert.Equal(t, asc, ascOf)
			assert.Contains(t, desc, cell)
			assert.Contains(t, asc, cell)
		})
	}
}

func TestSingleColumnDiagonals(t *testing.T) {
	g := numbered(t, 3, 1)
	desc, err := g.DiagonalDesc(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, values(t, desc))
	asc, err := g.DiagonalAsc(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, values(t, asc))
}

func TestRegenerateNotifiesInGridOrder(t *testing.T) {
	g, err := New[int](2, 2)
	require.NoError(t, err)

	var order [][2]int
	for _, c := range g.Cells() {
		c.AddListener(func(c *Cell[int], _, _ Optional[int]) {
			order = append(order, [2]int{c.Row(), c.Column()})
		})
	}

	g.Regenerate(func(r, c int) int { return 10*r + c })

	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, order)
	got := make([]int, 0, g.Len())
	for _, v := range g.Values() {
		got = append(got, v.OrElse(-1))
	}
	assert.Equal(t, []int{0, 1, 10, 11}, got)
}

func TestAllStopsEarly(t *testing.T) {
	g := numbered(t, 3, 3)
	seen := 0
	for i, c := range g.All() {
		v, _ := c.Get()
		assert.Equal(t, i, v)
		seen++
		if seen == 4 {
			break
		}
	}
	assert.Equal(t, 4, seen)
}
