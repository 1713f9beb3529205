package crawler

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Task is the handle of a crawl running on its own goroutine.
type Task struct {
	group  errgroup.Group
	cancel context.CancelFunc
	done   chan struct{}
}

func startTask(parent context.Context, run func(ctx context.Context) error) *Task {
	ctx, cancel := context.WithCancel(parent)
	t := &Task{cancel: cancel, done: make(chan struct{})}
	t.group.Go(func() (err error) {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrPanicked, r)
			}
		}()
		return classify(run(ctx))
	})
	return t
}

// Wait blocks until the crawl returns and reports its outcome: nil on success,
// an error wrapping ErrStopped if it was cancelled, or the visitor's error.
func (t *Task) Wait() error {
	err := t.group.Wait()
	t.cancel()
	return err
}

// Done is closed once the crawl has returned.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel asks the crawl to stop. Visitors observe it through their context.
func (t *Task) Cancel() { t.cancel() }

func (t *Task) running() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		if errors.Is(err, ErrStopped) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStopped, err)
	}
	return err
}
