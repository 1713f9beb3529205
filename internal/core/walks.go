package core

import (
	"errors"
	"fmt"
	"slices"

	"gridcrawl/pkg/crawler"
)

// StopState is the global state value that asks a running walk to return early.
const StopState = 1

// ErrUnknownWalk is returned by Lookup for names that were never registered.
var ErrUnknownWalk = errors.New("unknown walk")

// Factory constructs a walk using an optional configuration map.
type Factory func(cfg map[string]string) crawler.Visitor[uint8]

var walks = map[string]Factory{}

// Register adds a walk factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	walks[name] = f
}

// Walks exposes the registry of available walk factories.
func Walks() map[string]Factory {
	return walks
}

// Names returns the registered walk names in sorted order.
func Names() []string {
	names := make([]string, 0, len(walks))
	for name := range walks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := walks[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownWalk, name)
	}
	return f, nil
}
