package callback

import (
	"sync"

	serrors "github.com/vango-dev/statecore/internal/errors"
	"github.com/vango-dev/statecore/pkg/reactive"
)

// Handle is an identity-stable wrapper around a function. Its pointer is its
// identity.
type Handle[F any] struct {
	id uint64
	fn F
}

// Func returns the wrapped function.
func (h *Handle[F]) Func() F {
	return h.fn
}

// ID returns the handle's unique identifier.
func (h *Handle[F]) ID() uint64 {
	return h.id
}

// Slot is one registration position. It remembers the last handle it issued
// and the dependencies it was issued for. The zero value is ready to use.
type Slot[F any] struct {
	handle   *Handle[F]
	deps     reactive.Deps
	issued   uint64
	observer func(reissued bool)
}

// Wrap returns the previously issued handle if deps are shallow-equal to the
// deps of the previous call, or a new handle around fn otherwise.
func (s *Slot[F]) Wrap(fn F, deps ...any) *Handle[F] {
	if s.handle != nil && s.deps.Equal(deps) {
		s.observe(false)
		return s.handle
	}

	s.handle = &Handle[F]{id: reactive.NextID(), fn: fn}
	s.deps = reactive.Snapshot(deps)
	s.issued++
	s.observe(true)
	return s.handle
}

// Current returns the last issued handle, or nil.
func (s *Slot[F]) Current() *Handle[F] {
	return s.handle
}

// Issued returns how many distinct handles the slot has issued.
func (s *Slot[F]) Issued() uint64 {
	return s.issued
}

// Observe registers fn to be called on every Wrap with whether a new handle
// was issued.
func (s *Slot[F]) Observe(fn func(reissued bool)) {
	s.observer = fn
}

func (s *Slot[F]) observe(reissued bool) {
	if s.observer != nil {
		s.observer(reissued)
	}
}

// Registry holds slots by key, for callers that cannot keep a Slot value
// around themselves.
type Registry struct {
	mu    sync.Mutex
	slots map[string]any

	observer func(key string, reissued bool)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]any)}
}

// Observe registers fn to be called on every Wrap through the registry.
func (r *Registry) Observe(fn func(key string, reissued bool)) {
	r.mu.Lock()
	r.observer = fn
	r.mu.Unlock()
}

// Len returns the number of registered slots.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Forget drops the slot for key; the next Wrap for it issues a new handle.
func (r *Registry) Forget(key string) {
	r.mu.Lock()
	delete(r.slots, key)
	r.mu.Unlock()
}

// Wrap is Slot.Wrap on the registry slot for key. Reusing a key with a
// different function type is a programmer error and panics with a coded
// diagnostic.
func Wrap[F any](r *Registry, key string, fn F, deps ...any) *Handle[F] {
	r.mu.Lock()
	raw, ok := r.slots[key]
	if !ok {
		raw = &Slot[F]{}
		r.slots[key] = raw
	}
	observer := r.observer
	r.mu.Unlock()

	slot, ok := raw.(*Slot[F])
	if !ok {
		panic(serrors.New("E121").WithSubject(key))
	}

	before := slot.issued
	h := slot.Wrap(fn, deps...)
	if observer != nil {
		observer(key, slot.issued != before)
	}
	return h
}

// Use is the hook form of Slot.Wrap: the slot lives in the owner's next hook
// slot, so it must be called unconditionally and in the same order on every
// render pass.
func Use[F any](owner *reactive.Owner, fn F, deps ...any) *Handle[F] {
	return UseSlot[F](owner).Wrap(fn, deps...)
}

// UseSlot returns the Slot stored in the owner's next hook slot, creating it
// on the first render.
func UseSlot[F any](owner *reactive.Owner) *Slot[F] {
	if owner == nil {
		panic(&reactive.ConfigurationError{Op: "use", Name: "callback", Err: reactive.ErrNilOwner})
	}
	if slot := owner.UseHookSlot(); slot != nil {
		return reactive.SlotAs[*Slot[F]](owner, slot)
	}
	s := &Slot[F]{}
	owner.SetHookSlot(s)
	return s
}
