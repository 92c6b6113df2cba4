package reactive

// Listener is anything that can be notified when a value it observes changes.
type Listener interface {
	// MarkDirty notifies the listener that the observed value changed.
	// Listeners pull the new value themselves.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication on subscribe.
	ID() uint64
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc struct {
	id uint64
	fn func()
}

// NewListenerFunc wraps fn in a Listener with a fresh ID.
func NewListenerFunc(fn func()) *ListenerFunc {
	return &ListenerFunc{id: NextID(), fn: fn}
}

// MarkDirty calls the wrapped function.
func (l *ListenerFunc) MarkDirty() {
	if l.fn != nil {
		l.fn()
	}
}

// ID returns the listener's ID.
func (l *ListenerFunc) ID() uint64 {
	return l.id
}

// Cleanup is a function that releases a subscription or other resource.
type Cleanup func()
