package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcrawl/pkg/crawler"
	"gridcrawl/pkg/grid"
)

func TestRegistry(t *testing.T) {
	noop := func(map[string]string) crawler.Visitor[uint8] {
		return crawler.VisitorFunc[uint8](func(context.Context, *crawler.Scope[uint8], *grid.Cell[uint8]) error {
			return nil
		})
	}
	Register("zz-test", noop)
	Register("aa-test", noop)
	Register("", noop)
	Register("nil-test", nil)
	t.Cleanup(func() {
		delete(walks, "zz-test")
		delete(walks, "aa-test")
	})

	f, err := Lookup("zz-test")
	require.NoError(t, err)
	assert.NotNil(t, f(nil))

	_, err = Lookup("nil-test")
	assert.ErrorIs(t, err, ErrUnknownWalk)
	_, err = Lookup("")
	assert.ErrorIs(t, err, ErrUnknownWalk)

	names := Names()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "aa-test")
	assert.Contains(t, Walks(), "zz-test")
}
