package context

import (
	"github.com/vango-dev/statecore/pkg/reactive"
)

// Provider owns the value of a channel for one owner subtree. It is the only
// holder of the value; consumers reach it through a Handle.
type Provider[T any] struct {
	channel *Channel[T]
	owner   *reactive.Owner
	signal  *reactive.Signal[T]
	closed  bool
}

// Read returns the current value.
func (p *Provider[T]) Read() T {
	return p.signal.Get()
}

// Write replaces the value and notifies subscribers if it changed.
// Writes to a closed provider are ignored.
func (p *Provider[T]) Write(value T) {
	if p.closed {
		return
	}
	p.signal.Set(value)
}

// Update replaces the value with fn applied to the value current when the
// write is committed.
func (p *Provider[T]) Update(fn func(T) T) {
	if p.closed {
		return
	}
	p.signal.Update(fn)
}

// Subscribe registers fn to be called after every change.
func (p *Provider[T]) Subscribe(fn func()) reactive.Cleanup {
	return p.signal.Subscribe(fn)
}

// Handle returns a consumer handle on this provider.
func (p *Provider[T]) Handle() *Handle[T] {
	return &Handle[T]{p: p}
}

// Owner returns the owner this provider is attached to.
func (p *Provider[T]) Owner() *reactive.Owner {
	return p.owner
}

// Channel returns the channel this provider serves.
func (p *Provider[T]) Channel() *Channel[T] {
	return p.channel
}

// Closed reports whether the provider's owner has been disposed.
func (p *Provider[T]) Closed() bool {
	return p.closed
}

func (p *Provider[T]) close() {
	p.closed = true
	p.signal.Close()
}

// Handle is what a consumer holds: read access to the provider's value plus
// the mutator capability. It does not own the value.
type Handle[T any] struct {
	p *Provider[T]
}

// Read returns the provider's current value.
func (h *Handle[T]) Read() T {
	return h.p.Read()
}

// Write asks the provider to replace its value.
func (h *Handle[T]) Write(value T) {
	h.p.Write(value)
}

// Update asks the provider to replace its value with fn applied to it.
func (h *Handle[T]) Update(fn func(T) T) {
	h.p.Update(fn)
}

// Setter returns the mutator capability alone, for consumers that only
// write.
func (h *Handle[T]) Setter() func(T) {
	return h.p.Write
}

// Subscribe registers fn to be called after every change of the value.
func (h *Handle[T]) Subscribe(fn func()) reactive.Cleanup {
	return h.p.Subscribe(fn)
}

// Provider returns the provider behind the handle.
func (h *Handle[T]) Provider() *Provider[T] {
	return h.p
}
