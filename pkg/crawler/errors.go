package crawler

import "errors"

var (
	// ErrAlreadyRunning is returned by StartCrawling while a crawl is in flight.
	ErrAlreadyRunning = errors.New("crawler: crawl already running")
	// ErrStopped wraps the context error of a crawl that was cancelled.
	ErrStopped = errors.New("crawler: crawl stopped")
	// ErrPanicked wraps a panic recovered from a visitor.
	ErrPanicked = errors.New("crawler: visitor panicked")
)
