package store

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/statecore/pkg/reactive"
)

// Reducer computes the state that follows action. It must be pure: the same
// (state, action) always yields the same result, and state is never mutated
// in place. changed reports whether next differs from state; when it is
// false the store keeps state and notifies nobody.
type Reducer[S, A any] func(state S, action A) (next S, changed bool)

// Transition applies one action to a store and reports whether the state
// changed.
type Transition[A any] func(action A) (changed bool)

// Middleware wraps a Transition. Middlewares run around the reducer, never
// inside it.
type Middleware[A any] func(next Transition[A]) Transition[A]

// Named is implemented by actions that provide a short name for logs and
// metric labels.
type Named interface {
	ActionName() string
}

// ActionName returns the action's name if it implements Named, or its Go
// type otherwise.
func ActionName(action any) string {
	if n, ok := action.(Named); ok {
		return n.ActionName()
	}
	if action == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", action)
}

// Option configures a Store.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

// WithName names the store in logs, metrics and errors.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the store's logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Store is a reducer-driven state container.
//
// A Store is not safe for concurrent use; it belongs to the single logical
// thread that drives its owner. Asynchronously obtained data enters it only
// as the payload of a dispatched action.
type Store[S, A any] struct {
	name   string
	logger *slog.Logger

	state   S
	version uint64
	reduce  Reducer[S, A]
	apply   Transition[A]

	notifier reactive.Notifier
	cycle    reactive.Cycle
	disposed bool
}

// New creates a store with the given initial state and reducer.
func New[S, A any](initial S, reduce Reducer[S, A], opts ...Option) *Store[S, A] {
	o := options{name: "store"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	s := &Store[S, A]{
		name:   o.name,
		logger: o.logger.With("store", o.name),
		state:  initial,
		reduce: reduce,
	}
	s.apply = s.transition
	return s
}

// Use adds middlewares around the current transition chain. Within one call
// the first middleware is the outermost; a later call wraps everything added
// before it.
func (s *Store[S, A]) Use(mws ...Middleware[A]) {
	apply := s.apply
	for i := len(mws) - 1; i >= 0; i-- {
		apply = mws[i](apply)
	}
	s.apply = apply
}

// Dispatch applies action. If the reducer reports a change, subscribers are
// notified once after the new state is stored. Dispatches made from inside a
// subscriber are queued and applied, in order, before the outermost Dispatch
// returns. Dispatch on a disposed store is dropped.
func (s *Store[S, A]) Dispatch(action A) {
	if s.disposed {
		s.logger.Warn("dispatch after dispose dropped", "action", ActionName(action))
		return
	}

	s.cycle.Run(func() {
		if s.disposed {
			return
		}
		if s.apply(action) {
			s.notifier.Notify()
		}
	})
}

func (s *Store[S, A]) transition(action A) bool {
	next, changed := s.reduce(s.state, action)
	if !changed {
		return false
	}
	s.state = next
	s.version++
	return true
}

// State returns the current state.
func (s *Store[S, A]) State() S {
	return s.state
}

// Version returns the number of state-changing dispatches so far.
func (s *Store[S, A]) Version() uint64 {
	return s.version
}

// Name returns the store's name.
func (s *Store[S, A]) Name() string {
	return s.name
}

// Subscribe registers fn to be called after every state change.
func (s *Store[S, A]) Subscribe(fn func()) reactive.Cleanup {
	return s.notifier.SubscribeFunc(fn)
}

// SubscribeListener registers a Listener to be marked dirty after every
// state change.
func (s *Store[S, A]) SubscribeListener(l reactive.Listener) reactive.Cleanup {
	s.notifier.Subscribe(l)
	return func() { s.notifier.Unsubscribe(l) }
}

// Dispose drops every subscriber and stops accepting dispatches.
func (s *Store[S, A]) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.notifier.Clear()
	s.logger.Debug("store disposed", "version", s.version)
}

// IsDisposed reports whether Dispose has been called.
func (s *Store[S, A]) IsDisposed() bool {
	return s.disposed
}

// Use returns the store kept in the owner's next hook slot, creating it on
// the first render. The store is disposed together with the owner.
func Use[S, A any](owner *reactive.Owner, initial S, reduce Reducer[S, A], opts ...Option) *Store[S, A] {
	if owner == nil {
		panic(&reactive.ConfigurationError{Op: "use", Name: "store", Err: reactive.ErrNilOwner})
	}
	if slot := owner.UseHookSlot(); slot != nil {
		return reactive.SlotAs[*Store[S, A]](owner, slot)
	}
	s := New(initial, reduce, opts...)
	owner.SetHookSlot(s)
	owner.OnCleanup(s.Dispose)
	return s
}
