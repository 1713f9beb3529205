// Package grid provides a fixed-size two-dimensional container of optional
// values stored in row-major order.
//
// Coordinates are always (row, column). Rows are checked against Height and
// columns against Width, for every query and mutation.
package grid

import (
	"fmt"
	"iter"
)

// Slots of the slice returned by Adjacents. They no longer apply when the
// slice is compacted.
const (
	Top = iota
	Right
	Bottom
	Left
)

// Slots of the slice returned by DiagonalAdjacents. They no longer apply
// when the slice is compacted.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Generator produces the value for the cell at (row, column).
type Generator[E any] func(row, column int) E

// Grid is a non-resizable 2D array of Cells.
type Grid[E any] struct {
	height, width int
	cells         []*Cell[E]
}

// New returns a grid whose cells are all empty.
func New[E any](height, width int) (*Grid[E], error) {
	return build(height, width, func(int, int) Optional[E] { return None[E]() })
}

// NewFilled returns a grid with initial stored in every cell.
func NewFilled[E any](height, width int, initial E) (*Grid[E], error) {
	return build(height, width, func(int, int) Optional[E] { return Some(initial) })
}

// NewGenerated returns a grid whose cells are filled by gen.
func NewGenerated[E any](height, width int, gen Generator[E]) (*Grid[E], error) {
	return build(height, width, func(r, c int) Optional[E] { return Some(gen(r, c)) })
}

func build[E any](height, width int, value func(r, c int) Optional[E]) (*Grid[E], error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, height, width)
	}
	cells := make([]*Cell[E], height*width)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			cells[r*width+c] = newCell(r, c, value(r, c))
		}
	}
	return &Grid[E]{height: height, width: width, cells: cells}, nil
}

// Height returns the number of rows.
func (g *Grid[E]) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid[E]) Width() int { return g.width }

// Len returns the number of cells.
func (g *Grid[E]) Len() int { return len(g.cells) }

// Contains reports whether (row, column) addresses a cell of g.
func (g *Grid[E]) Contains(row, column int) bool {
	return row >= 0 && row < g.height && column >= 0 && column < g.width
}

// Cells returns the cells in row-major order. The slice is a copy; the cells
// are shared.
func (g *Grid[E]) Cells() []*Cell[E] {
	out := make([]*Cell[E], len(g.cells))
	copy(out, g.cells)
	return out
}

// All iterates the cells in row-major order along with their index.
func (g *Grid[E]) All() iter.Seq2[int, *Cell[E]] {
	return func(yield func(int, *Cell[E]) bool) {
		for i, c := range g.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Values returns a row-major snapshot of every cell's value.
func (g *Grid[E]) Values() []Optional[E] {
	out := make([]Optional[E], len(g.cells))
	for i, c := range g.cells {
		out[i] = c.value
	}
	return out
}

// Regenerate overwrites every cell with gen, in row-major order. Each cell's
// listeners fire once.
func (g *Grid[E]) Regenerate(gen Generator[E]) {
	for _, c := range g.cells {
		c.Set(gen(c.row, c.column))
	}
}

// Store writes v at (row, column). It returns false when the coordinates are
// out of range.
func (g *Grid[E]) Store(v E, row, column int) bool {
	if !g.Contains(row, column) {
		return false
	}
	g.at(row, column).Set(v)
	return true
}

// Replace writes v at (row, column) only if that cell already holds a value.
// It returns whether a value was replaced. Out-of-range coordinates, including
// a column equal to Width that would otherwise alias the next row, return
// false.
func (g *Grid[E]) Replace(v E, row, column int) bool {
	if !g.Contains(row, column) {
		return false
	}
	c := g.at(row, column)
	if c.IsEmpty() {
		return false
	}
	c.Set(v)
	return true
}

// Remove empties the cell at (row, column). It returns true iff the cell held
// a value before the call; empty or out-of-range cells are left untouched.
func (g *Grid[E]) Remove(row, column int) bool {
	if !g.Contains(row, column) {
		return false
	}
	c := g.at(row, column)
	if c.IsEmpty() {
		return false
	}
	c.Clear()
	return true
}

// Get returns the cell at (row, column).
func (g *Grid[E]) Get(row, column int) (*Cell[E], error) {
	if err := g.check(row, column); err != nil {
		return nil, err
	}
	return g.at(row, column), nil
}

// Adjacents returns the up, right, down and left neighbors of (row, column),
// indexed by Top, Right, Bottom and Left. Missing neighbors are nil unless
// compact is set, in which case they are dropped.
func (g *Grid[E]) Adjacents(row, column int, compact bool) ([]*Cell[E], error) {
	if err := g.check(row, column); err != nil {
		return nil, err
	}
	out := []*Cell[E]{
		Top:    g.lookup(row-1, column),
		Right:  g.lookup(row, column+1),
		Bottom: g.lookup(row+1, column),
		Left:   g.lookup(row, column-1),
	}
	if compact {
		out = compactCells(out)
	}
	return out, nil
}

// DiagonalAdjacents returns the four corner neighbors of (row, column),
// indexed by TopLeft, TopRight, BottomRight and BottomLeft. Missing neighbors
// are nil unless compact is set.
func (g *Grid[E]) DiagonalAdjacents(row, column int, compact bool) ([]*Cell[E], error) {
	if err := g.check(row, column); err != nil {
		return nil, err
	}
	out := []*Cell[E]{
		TopLeft:     g.lookup(row-1, column-1),
		TopRight:    g.lookup(row-1, column+1),
		BottomRight: g.lookup(row+1, column+1),
		BottomLeft:  g.lookup(row+1, column-1),
	}
	if compact {
		out = compactCells(out)
	}
	return out, nil
}

// Row returns the cells of row from left to right.
func (g *Grid[E]) Row(row int) ([]*Cell[E], error) {
	if row < 0 || row >= g.height {
		return nil, fmt.Errorf("%w: row %d outside [0,%d)", ErrOutOfRange, row, g.height)
	}
	out := make([]*Cell[E], g.width)
	copy(out, g.cells[row*g.width:(row+1)*g.width])
	return out, nil
}

// Column returns the cells of column from top to bottom.
func (g *Grid[E]) Column(column int) ([]*Cell[E], error) {
	if column < 0 || column >= g.width {
		return nil, fmt.Errorf("%w: column %d outside [0,%d)", ErrOutOfRange, column, g.width)
	}
	out := make([]*Cell[E], g.height)
	for r := range out {
		out[r] = g.at(r, column)
	}
	return out, nil
}

// DiagonalDesc returns the whole top-left to bottom-right diagonal through
// (row, column), starting at its top-left end.
func (g *Grid[E]) DiagonalDesc(row, column int) ([]*Cell[E], error) {
	if err := g.check(row, column); err != nil {
		return nil, err
	}
	rowStart, colStart := 0, 0
	if row > column {
		rowStart = row - column
	} else {
		colStart = column - row
	}
	var out []*Cell[E]
	i := rowStart*g.width + colStart
	for {
		out = append(out, g.cells[i])
		i += g.width + 1
		if i >= len(g.cells) || i%g.width == 0 {
			return out, nil
		}
	}
}

// DiagonalAsc returns the whole bottom-left to top-right diagonal through
// (row, column), starting at its bottom-left end.
func (g *Grid[E]) DiagonalAsc(row, column int) ([]*Cell[E], error) {
	if err := g.check(row, column); err != nil {
		return nil, err
	}
	// Distance from the bottom edge.
	up := g.height - 1 - row
	rowStart, colStart := g.height-1, 0
	if column > up {
		colStart = column - up
	} else {
		rowStart = row + column
	}
	var out []*Cell[E]
	i := rowStart*g.width + colStart
	for {
		out = append(out, g.cells[i])
		i -= g.width - 1
		if i < 0 || i%g.width == 0 {
			return out, nil
		}
	}
}

// AdjacentsOf is Adjacents for the coordinates of c.
func (g *Grid[E]) AdjacentsOf(c *Cell[E], compact bool) ([]*Cell[E], error) {
	return g.Adjacents(c.row, c.column, compact)
}

// DiagonalAdjacentsOf is DiagonalAdjacents for the coordinates of c.
func (g *Grid[E]) DiagonalAdjacentsOf(c *Cell[E], compact bool) ([]*Cell[E], error) {
	return g.DiagonalAdjacents(c.row, c.column, compact)
}

// RowOf returns the row containing c.
func (g *Grid[E]) RowOf(c *Cell[E]) ([]*Cell[E], error) { return g.Row(c.row) }

// ColumnOf returns the column containing c.
func (g *Grid[E]) ColumnOf(c *Cell[E]) ([]*Cell[E], error) { return g.Column(c.column) }

// DiagonalDescOf returns the descending diagonal containing c.
func (g *Grid[E]) DiagonalDescOf(c *Cell[E]) ([]*Cell[E], error) {
	return g.DiagonalDesc(c.row, c.column)
}

// DiagonalAscOf returns the ascending diagonal containing c.
func (g *Grid[E]) DiagonalAscOf(c *Cell[E]) ([]*Cell[E], error) {
	return g.DiagonalAsc(c.row, c.column)
}

func (g *Grid[E]) check(row, column int) error {
	if !g.Contains(row, column) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, row, column, g.height, g.width)
	}
	return nil
}

func (g *Grid[E]) at(row, column int) *Cell[E] { return g.cells[row*g.width+column] }

func (g *Grid[E]) lookup(row, column int) *Cell[E] {
	if !g.Contains(row, column) {
		return nil
	}
	return g.at(row, column)
}

func compactCells[E any](cells []*Cell[E]) []*Cell[E] {
	out := cells[:0]
	for _, c := range cells {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
