package reactive

import (
	"sync"
	"sync/atomic"
)

// Owner represents a node scope that owns stores, providers and hook state.
// When an Owner is disposed, its children are disposed and its cleanups run,
// so nothing it owns outlives it.
//
// Owners form a hierarchy: each node creates an Owner that is a child of its
// parent node's Owner.
type Owner struct {
	id uint64

	// parent is nil for a root Owner.
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	// cleanups are registered via OnCleanup and run in reverse on Dispose.
	cleanups   []func()
	cleanupsMu sync.Mutex

	// values stores scoped values (providers) for this owner.
	values   map[any]any
	valuesMu sync.RWMutex

	disposed atomic.Bool

	// Hook slot storage for stable identity across renders.
	hookSlots   []any
	hookSlotIdx int
	renderCount int
}

// NewOwner creates a new Owner with the given parent.
// The new Owner is registered as a child of the parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     NextID(),
		parent: parent,
	}

	if parent != nil {
		parent.addChild(o)
	}

	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

// Children returns a snapshot of the child owners.
func (o *Owner) Children() []*Owner {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	return append([]*Owner(nil), o.children...)
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()

	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers a cleanup function to run when this Owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		// Already disposed, run cleanup immediately
		fn()
		return
	}

	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// Dispose disposes this Owner and all its children, then runs its cleanups.
// Children are disposed in reverse order (last created first).
// After disposal, the Owner holds no values and cannot be used.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.valuesMu.Lock()
	o.values = nil
	o.valuesMu.Unlock()

	o.hookSlots = nil
}

// SetValue sets a scoped value on this Owner. Ignored once disposed.
func (o *Owner) SetValue(key, value any) {
	if o.disposed.Load() {
		return
	}

	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()

	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// OwnValue returns the value stored on this Owner itself, ignoring ancestors.
func (o *Owner) OwnValue(key any) (any, bool) {
	o.valuesMu.RLock()
	defer o.valuesMu.RUnlock()
	val, ok := o.values[key]
	return val, ok
}

// DeleteValue removes a value stored on this Owner.
func (o *Owner) DeleteValue(key any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()
	delete(o.values, key)
}

// LookupValue finds key on this Owner or the nearest ancestor that has it.
// A disposed Owner finds nothing.
func (o *Owner) LookupValue(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		if cur.disposed.Load() {
			return nil, false
		}
		if val, ok := cur.OwnValue(key); ok {
			return val, true
		}
	}
	return nil, false
}

// =============================================================================
// Hook Slot Storage for Stable Identity
// =============================================================================

// Render runs fn as one render pass of this Owner: the hook slot cursor is
// reset before fn runs, so hooks called in the same order get the same
// slots on every pass.
func (o *Owner) Render(fn func()) {
	o.StartRender()
	defer o.EndRender()
	fn()
}

// StartRender resets the hook slot cursor.
func (o *Owner) StartRender() {
	o.hookSlotIdx = 0
}

// EndRender marks the end of a render pass.
func (o *Owner) EndRender() {
	o.renderCount++
}

// RenderCount returns the number of completed render passes.
func (o *Owner) RenderCount() int {
	return o.renderCount
}

// UseHookSlot returns the value stored in the current hook slot and advances
// the cursor. It returns nil when the slot has not been filled yet; the
// caller creates the value and stores it with SetHookSlot.
//
// Usage pattern:
//
//	func UseThing(o *reactive.Owner) *Thing {
//	    if slot := o.UseHookSlot(); slot != nil {
//	        return reactive.SlotAs[*Thing](o, slot)
//	    }
//	    t := &Thing{}
//	    o.SetHookSlot(t)
//	    return t
//	}
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++

	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}
	return nil
}

// SetHookSlot stores a value in the slot UseHookSlot just returned nil for.
// It does nothing on a disposed owner.
func (o *Owner) SetHookSlot(value any) {
	if o.disposed.Load() {
		return
	}
	o.hookSlots = append(o.hookSlots, value)
}

// SlotAs asserts a hook slot value to T. A mismatch means hooks were called
// in a different order than on the first render; it panics with a
// *HookSlotError.
func SlotAs[T any](o *Owner, slot any) T {
	typed, ok := slot.(T)
	if !ok {
		var zero T
		panic(&HookSlotError{
			Index: o.hookSlotIdx - 1,
			Want:  typeName(zero),
			Got:   typeName(slot),
		})
	}
	return typed
}
