package grid

import "github.com/google/uuid"

// Listener observes value changes on a Cell. It runs synchronously on the
// goroutine that changed the cell.
type Listener[E any] func(c *Cell[E], oldValue, newValue Optional[E])

type registration[E any] struct {
	id      uuid.UUID
	fn      Listener[E]
	removed bool
}

// Cell is one addressable slot of a Grid.
type Cell[E any] struct {
	row, column int
	value       Optional[E]
	listeners   []*registration[E]
}

func newCell[E any](row, column int, value Optional[E]) *Cell[E] {
	return &Cell[E]{row: row, column: column, value: value}
}

// Row returns the cell's row.
func (c *Cell[E]) Row() int { return c.row }

// Column returns the cell's column.
func (c *Cell[E]) Column() int { return c.column }

// IsEmpty reports whether the cell holds no value.
func (c *Cell[E]) IsEmpty() bool { return !c.value.ok }

// Get returns the stored value and whether one is present.
func (c *Cell[E]) Get() (E, bool) { return c.value.Get() }

// Value returns the stored value as an Optional.
func (c *Cell[E]) Value() Optional[E] { return c.value }

// Set stores v and notifies every listener.
func (c *Cell[E]) Set(v E) { c.update(Some(v)) }

// Clear empties the cell. Listeners are notified exactly as for Set, with an
// empty new value.
func (c *Cell[E]) Clear() { c.update(None[E]()) }

func (c *Cell[E]) update(next Optional[E]) {
	old := c.value
	c.value = next
	if len(c.listeners) == 0 {
		return
	}
	// A listener may register or remove listeners while we dispatch.
	snapshot := make([]*registration[E], len(c.listeners))
	copy(snapshot, c.listeners)
	for _, reg := range snapshot {
		if reg.removed {
			continue
		}
		reg.fn(c, old, next)
	}
}

// AddListener registers fn and returns the handle used to remove it.
func (c *Cell[E]) AddListener(fn Listener[E]) uuid.UUID {
	reg := &registration[E]{id: uuid.New(), fn: fn}
	c.listeners = append(c.listeners, reg)
	return reg.id
}

// RemoveListener unregisters the listener with the given handle. It reports
// whether the handle was registered.
func (c *Cell[E]) RemoveListener(id uuid.UUID) bool {
	for i, reg := range c.listeners {
		if reg.id != id {
			continue
		}
		reg.removed = true
		c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
		return true
	}
	return false
}

// Listeners returns the number of registered listeners.
func (c *Cell[E]) Listeners() int { return len(c.listeners) }
