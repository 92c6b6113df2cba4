package reactive

// Signal is a value container that notifies its subscribers when the value
// changes.
//
// Writes go through a Cycle: a Set issued while subscribers are still being
// notified is committed only after that notification pass finishes, so all
// subscribers of one pass observe the same value.
//
// A Signal is not safe for concurrent use; like the Cycle it writes through,
// it belongs to the single logical thread that drives its owner.
type Signal[T any] struct {
	id       uint64
	value    T
	equal    func(T, T) bool
	notifier Notifier
	cycle    Cycle
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		id:    NextID(),
		value: initial,
	}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.cycle.Run(func() {
		s.commit(func(T) T { return value })
	})
}

// Update replaces the value with fn applied to the value current at commit
// time. Queued updates therefore compose, e.g. two Update(toggle) calls from
// one notification pass restore the original value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.cycle.Run(func() {
		s.commit(fn)
	})
}

func (s *Signal[T]) commit(fn func(T) T) {
	old := s.value
	next := fn(old)
	if s.equals(old, next) {
		return
	}
	s.value = next
	s.notifier.Notify()
}

// Subscribe registers fn to be called after every change.
func (s *Signal[T]) Subscribe(fn func()) Cleanup {
	return s.notifier.SubscribeFunc(fn)
}

// SubscribeListener registers a Listener to be marked dirty after every
// change.
func (s *Signal[T]) SubscribeListener(l Listener) Cleanup {
	s.notifier.Subscribe(l)
	return func() { s.notifier.Unsubscribe(l) }
}

// Subscribers returns the number of subscribers.
func (s *Signal[T]) Subscribers() int {
	return s.notifier.Len()
}

// Close drops every subscriber.
func (s *Signal[T]) Close() {
	s.notifier.Clear()
}

// WithEquals configures a custom equality function.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return DefaultEquals(a, b)
}
