package memo

import (
	"github.com/vango-dev/statecore/pkg/reactive"
)

// Cell is a memoized value together with the dependency snapshot it was
// computed from. The zero value is ready to use.
type Cell[T any] struct {
	value    T
	deps     reactive.Deps
	valid    bool
	observer func(hit bool)

	hits   uint64
	misses uint64
}

// Option configures a Cell.
type Option func(*options)

type options struct {
	observer func(hit bool)
}

// WithObserver registers fn to be called on every Memoize with whether the
// cached value was reused.
func WithObserver(fn func(hit bool)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// NewCell creates a Cell with options applied.
func NewCell[T any](opts ...Option) *Cell[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Cell[T]{observer: o.observer}
}

// Memoize returns the cached value when deps are shallow-equal to the deps of
// the previous call. Otherwise it runs compute, caches the result with a copy
// of deps, and returns it.
func (c *Cell[T]) Memoize(compute func() T, deps ...any) T {
	if c.valid && c.deps.Equal(deps) {
		c.hits++
		c.observe(true)
		return c.value
	}

	value := compute()
	c.value = value
	c.deps = reactive.Snapshot(deps)
	c.valid = true
	c.misses++
	c.observe(false)
	return value
}

// Peek returns the cached value and whether there is one.
func (c *Cell[T]) Peek() (T, bool) {
	return c.value, c.valid
}

// Reset drops the cached value; the next Memoize recomputes.
func (c *Cell[T]) Reset() {
	var zero T
	c.value = zero
	c.deps = nil
	c.valid = false
}

// Stats returns how many Memoize calls reused the cache and how many
// recomputed.
func (c *Cell[T]) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}

func (c *Cell[T]) observe(hit bool) {
	if c.observer != nil {
		c.observer(hit)
	}
}

// Use is the hook form of Cell.Memoize: the cell lives in the owner's next
// hook slot, so it must be called unconditionally and in the same order on
// every render pass.
func Use[T any](owner *reactive.Owner, compute func() T, deps ...any) T {
	return UseCell[T](owner).Memoize(compute, deps...)
}

// UseCell returns the Cell stored in the owner's next hook slot, creating it
// on the first render.
func UseCell[T any](owner *reactive.Owner, opts ...Option) *Cell[T] {
	if owner == nil {
		panic(&reactive.ConfigurationError{Op: "use", Name: "memo", Err: reactive.ErrNilOwner})
	}
	if slot := owner.UseHookSlot(); slot != nil {
		return reactive.SlotAs[*Cell[T]](owner, slot)
	}
	cell := NewCell[T](opts...)
	owner.SetHookSlot(cell)
	return cell
}
