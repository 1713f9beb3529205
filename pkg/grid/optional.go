package grid

// Optional holds either a value or nothing. The zero Optional is empty.
type Optional[E any] struct {
	value E
	ok    bool
}

// Some wraps v in a present Optional.
func Some[E any](v E) Optional[E] { return Optional[E]{value: v, ok: true} }

// None returns an empty Optional.
func None[E any]() Optional[E] { return Optional[E]{} }

// Get returns the wrapped value and whether one is present.
func (o Optional[E]) Get() (E, bool) { return o.value, o.ok }

// IsPresent reports whether a value is held.
func (o Optional[E]) IsPresent() bool { return o.ok }

// OrElse returns the wrapped value, or def when empty.
func (o Optional[E]) OrElse(def E) E {
	if !o.ok {
		return def
	}
	return o.value
}
