package crawler

import (
	"slices"
	"sync"
	"sync/atomic"

	"gridcrawl/pkg/grid"
)

// firstSubcrawlerID is the id handed to the first Subcrawler of a Scope. Ids
// decrease from there so they never collide with non-negative caller flags.
const firstSubcrawlerID = -10

// Scope is the state a Crawler shares with all of its Subcrawlers: the grid,
// the flag store, the subcrawler id counter and the global state.
//
// The flag store is guarded by a mutex. The grid is not; cell mutation from
// more than one goroutine must be serialized by the caller.
type Scope[E any] struct {
	grid *grid.Grid[E]

	mu      sync.Mutex
	buckets map[int][]*grid.Cell[E]

	nextID      atomic.Int64
	globalState atomic.Int64
}

// NewScope returns an empty scope over g.
func NewScope[E any](g *grid.Grid[E]) *Scope[E] {
	s := &Scope[E]{grid: g, buckets: make(map[int][]*grid.Cell[E])}
	s.nextID.Store(firstSubcrawlerID)
	return s
}

// Grid returns the grid being crawled.
func (s *Scope[E]) Grid() *grid.Grid[E] { return s.grid }

// Flag appends cells to the bucket for flag. Cells flagged twice appear twice.
func (s *Scope[E]) Flag(flag int, cells ...*grid.Cell[E]) {
	if len(cells) == 0 {
		return
	}
	s.mu.Lock()
	s.buckets[flag] = append(s.buckets[flag], cells...)
	s.mu.Unlock()
}

// Flagged returns the cells flagged with flag in insertion order. The slice is
// a copy; it is empty for a flag that was never used.
func (s *Scope[E]) Flagged(flag int) []*grid.Cell[E] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*grid.Cell[E]{}, s.buckets[flag]...)
}

// Count returns the number of entries flagged with flag.
func (s *Scope[E]) Count(flag int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets[flag])
}

// Flags returns every flag that has a bucket, in ascending order.
func (s *Scope[E]) Flags() []int {
	s.mu.Lock()
	flags := make([]int, 0, len(s.buckets))
	for f := range s.buckets {
		flags = append(flags, f)
	}
	s.mu.Unlock()
	slices.Sort(flags)
	return flags
}

// Reset drops every bucket. Subcrawler ids keep decreasing.
func (s *Scope[E]) Reset() {
	s.mu.Lock()
	clear(s.buckets)
	s.mu.Unlock()
}

// GlobalState returns the free-form value visitors use to coordinate.
func (s *Scope[E]) GlobalState() int64 { return s.globalState.Load() }

// SetGlobalState replaces the global state.
func (s *Scope[E]) SetGlobalState(v int64) { s.globalState.Store(v) }

// Spawn creates a Subcrawler sharing this scope, with the next free id.
func (s *Scope[E]) Spawn(v SubVisitor[E]) *Subcrawler[E] {
	id := s.nextID.Add(-1) + 1
	return &Subcrawler[E]{Scope: s, visitor: v, id: int(id)}
}
