package reactive

import "sync"

// Notifier keeps a set of listeners and notifies them on demand.
// It is embedded in stores, signals and providers to share subscription
// logic.
type Notifier struct {
	subs  []Listener
	subMu sync.RWMutex
}

// Subscribe adds a listener. Deduplicates by listener ID.
func (n *Notifier) Subscribe(l Listener) {
	if l == nil {
		return
	}

	n.subMu.Lock()
	defer n.subMu.Unlock()

	lid := l.ID()
	for _, existing := range n.subs {
		if existing.ID() == lid {
			return
		}
	}

	n.subs = append(n.subs, l)
}

// Unsubscribe removes a listener.
func (n *Notifier) Unsubscribe(l Listener) {
	if l == nil {
		return
	}

	n.subMu.Lock()
	defer n.subMu.Unlock()

	lid := l.ID()
	for i, existing := range n.subs {
		if existing.ID() == lid {
			// Keep registration order; observers are notified in it.
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// SubscribeFunc registers fn and returns a Cleanup that unregisters it.
func (n *Notifier) SubscribeFunc(fn func()) Cleanup {
	l := NewListenerFunc(fn)
	n.Subscribe(l)
	return func() { n.Unsubscribe(l) }
}

// Notify marks every listener dirty, in registration order.
// The listener list is copied first so listeners may (un)subscribe while
// being notified.
func (n *Notifier) Notify() {
	n.subMu.RLock()
	subs := make([]Listener, len(n.subs))
	copy(subs, n.subs)
	n.subMu.RUnlock()

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// Len returns the number of subscribed listeners.
func (n *Notifier) Len() int {
	n.subMu.RLock()
	defer n.subMu.RUnlock()
	return len(n.subs)
}

// Clear removes every listener.
func (n *Notifier) Clear() {
	n.subMu.Lock()
	n.subs = nil
	n.subMu.Unlock()
}
