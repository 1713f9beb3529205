package crawler

import (
	"context"

	"gridcrawl/pkg/grid"
)

// SubVisitor is the traversal hook of a Subcrawler.
type SubVisitor[E any] interface {
	Visit(ctx context.Context, sub *Subcrawler[E], start *grid.Cell[E]) error
}

// SubVisitorFunc adapts a function to SubVisitor.
type SubVisitorFunc[E any] func(ctx context.Context, sub *Subcrawler[E], start *grid.Cell[E]) error

// Visit calls f.
func (f SubVisitorFunc[E]) Visit(ctx context.Context, sub *Subcrawler[E], start *grid.Cell[E]) error {
	return f(ctx, sub, start)
}

// Subcrawler is a recursive traversal step. It shares its parent's Scope, so
// Flag and Flagged act on the same store, and carries a private negative id
// usable as a flag of its own.
type Subcrawler[E any] struct {
	*Scope[E]
	visitor SubVisitor[E]
	id      int
	state   int
}

// ID returns the subcrawler's id.
func (s *Subcrawler[E]) ID() int { return s.id }

// State returns the subcrawler's private state.
func (s *Subcrawler[E]) State() int { return s.state }

// SetState replaces the subcrawler's private state.
func (s *Subcrawler[E]) SetState(v int) { s.state = v }

// Start runs the visitor on the calling goroutine.
func (s *Subcrawler[E]) Start(ctx context.Context, start *grid.Cell[E]) error {
	return s.visitor.Visit(ctx, s, start)
}
