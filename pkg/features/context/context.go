package context

import (
	"github.com/vango-dev/statecore/pkg/reactive"
)

// Channel identifies one kind of shared value.
type Channel[T any] struct {
	name  string
	key   *channelKey
	equal func(T, T) bool
}

// channelKey is the owner value key; its pointer makes every Channel
// distinct even when names collide.
type channelKey struct {
	name string
}

// Create declares a channel. The name appears in errors and metrics.
func Create[T any](name string) *Channel[T] {
	return &Channel[T]{
		name: name,
		key:  &channelKey{name: name},
	}
}

// WithEquals sets the equality used to decide whether a write changes the
// value. Without it reactive.DefaultEquals is used.
func (c *Channel[T]) WithEquals(fn func(T, T) bool) *Channel[T] {
	c.equal = fn
	return c
}

// Name returns the channel's name.
func (c *Channel[T]) Name() string {
	return c.name
}

// Provide makes owner the provider of this channel for itself and its
// descendants, starting from initial. The provider is closed when owner is
// disposed. Providing the same channel twice on one owner fails; provide on
// a child owner to shadow an outer provider.
func (c *Channel[T]) Provide(owner *reactive.Owner, initial T) (*Provider[T], error) {
	if owner == nil {
		return nil, c.configErr("provide", reactive.ErrNilOwner)
	}
	if owner.IsDisposed() {
		return nil, c.configErr("provide", reactive.ErrDisposed)
	}
	if _, exists := owner.OwnValue(c.key); exists {
		return nil, c.configErr("provide", reactive.ErrDuplicateProvider)
	}

	sig := reactive.NewSignal(initial)
	if c.equal != nil {
		sig.WithEquals(c.equal)
	}
	p := &Provider[T]{
		channel: c,
		owner:   owner,
		signal:  sig,
	}
	owner.SetValue(c.key, p)
	owner.OnCleanup(p.close)
	return p, nil
}

// MustProvide is Provide that panics on error.
func (c *Channel[T]) MustProvide(owner *reactive.Owner, initial T) *Provider[T] {
	p, err := c.Provide(owner, initial)
	if err != nil {
		panic(err)
	}
	return p
}

// Use returns a handle on the nearest provider of this channel above (or at)
// owner.
func (c *Channel[T]) Use(owner *reactive.Owner) (*Handle[T], error) {
	p, err := c.lookup(owner, "use")
	if err != nil {
		return nil, err
	}
	return p.Handle(), nil
}

// MustUse is Use that panics with the *reactive.ConfigurationError when no
// provider is in scope.
func (c *Channel[T]) MustUse(owner *reactive.Owner) *Handle[T] {
	h, err := c.Use(owner)
	if err != nil {
		panic(err)
	}
	return h
}

// Read returns the value of the nearest provider. With no provider in scope
// it returns the zero value and a *reactive.ConfigurationError.
func (c *Channel[T]) Read(owner *reactive.Owner) (T, error) {
	p, err := c.lookup(owner, "read")
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Read(), nil
}

// Write sets the value of the nearest provider.
func (c *Channel[T]) Write(owner *reactive.Owner, value T) error {
	p, err := c.lookup(owner, "write")
	if err != nil {
		return err
	}
	p.Write(value)
	return nil
}

// Update replaces the value of the nearest provider with fn applied to it.
func (c *Channel[T]) Update(owner *reactive.Owner, fn func(T) T) error {
	p, err := c.lookup(owner, "write")
	if err != nil {
		return err
	}
	p.Update(fn)
	return nil
}

func (c *Channel[T]) lookup(owner *reactive.Owner, op string) (*Provider[T], error) {
	if owner == nil {
		return nil, c.configErr(op, reactive.ErrNilOwner)
	}
	v, ok := owner.LookupValue(c.key)
	if !ok {
		return nil, c.configErr(op, reactive.ErrNoProvider)
	}
	return v.(*Provider[T]), nil
}

func (c *Channel[T]) configErr(op string, err error) *reactive.ConfigurationError {
	return &reactive.ConfigurationError{Op: op, Name: c.name, Err: err}
}
