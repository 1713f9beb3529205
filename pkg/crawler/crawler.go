// Package crawler is a harness for walking a grid.Grid. A Visitor supplies
// the walk; the harness supplies a shared flag store, recursive Subcrawlers
// and a single background goroutine with a join point.
package crawler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"gridcrawl/pkg/grid"
)

// Visitor is the traversal hook of a Crawler. Implementations walk the grid
// from start and flag the cells they visit through the scope.
type Visitor[E any] interface {
	Visit(ctx context.Context, scope *Scope[E], start *grid.Cell[E]) error
}

// VisitorFunc adapts a function to Visitor.
type VisitorFunc[E any] func(ctx context.Context, scope *Scope[E], start *grid.Cell[E]) error

// Visit calls f.
func (f VisitorFunc[E]) Visit(ctx context.Context, scope *Scope[E], start *grid.Cell[E]) error {
	return f(ctx, scope, start)
}

// Option configures a Crawler.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for task lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Crawler binds a Visitor to a grid. At most one background crawl runs at a
// time.
type Crawler[E any] struct {
	*Scope[E]
	visitor Visitor[E]
	logger  *zap.Logger

	mu   sync.Mutex
	task *Task
}

// New returns a crawler over g driven by v. The grid is borrowed.
func New[E any](g *grid.Grid[E], v Visitor[E], opts ...Option) *Crawler[E] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Crawler[E]{Scope: NewScope(g), visitor: v, logger: o.logger}
}

// Crawl runs the visitor on the calling goroutine.
func (c *Crawler[E]) Crawl(ctx context.Context, start *grid.Cell[E]) error {
	return c.visitor.Visit(ctx, c.Scope, start)
}

// StartCrawling runs the visitor on a new goroutine and returns at once. It
// fails with ErrAlreadyRunning if the previous crawl has not returned yet.
func (c *Crawler[E]) StartCrawling(ctx context.Context, start *grid.Cell[E]) (*Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.task != nil && c.task.running() {
		return nil, ErrAlreadyRunning
	}

	log := c.logger.With(zap.Int("start_row", start.Row()), zap.Int("start_col", start.Column()))
	log.Debug("crawl started")
	began := time.Now()
	c.task = startTask(ctx, func(ctx context.Context) error {
		err := c.visitor.Visit(ctx, c.Scope, start)
		switch {
		case err == nil:
			log.Debug("crawl finished", zap.Duration("elapsed", time.Since(began)))
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.Info("crawl stopped", zap.Duration("elapsed", time.Since(began)), zap.Error(err))
		default:
			log.Warn("crawl failed", zap.Duration("elapsed", time.Since(began)), zap.Error(err))
		}
		return err
	})
	return c.task, nil
}

// BlockUntilFinished waits for the current background crawl and returns its
// result. It returns nil if no crawl was ever started.
func (c *Crawler[E]) BlockUntilFinished() error {
	c.mu.Lock()
	t := c.task
	c.mu.Unlock()
	if t == nil {
		return nil
	}
	return t.Wait()
}

// Stop cancels the current background crawl, if any.
func (c *Crawler[E]) Stop() {
	c.mu.Lock()
	t := c.task
	c.mu.Unlock()
	if t != nil {
		t.Cancel()
	}
}

// Running reports whether a background crawl is in flight.
func (c *Crawler[E]) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.task != nil && c.task.running()
}
