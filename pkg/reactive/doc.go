// Package reactive provides the scope tree and notification primitives that
// the statecore feature packages are built on.
//
// # Owners
//
// An Owner is the node of the call tree that owns state. Owners form a
// hierarchy mirroring the tree of nodes that use them:
//
//	root := reactive.NewOwner(nil)
//	child := reactive.NewOwner(root)
//	defer root.Dispose() // disposes child too, running cleanups in reverse
//
// Owners are passed explicitly. There is no goroutine-local "current owner";
// a feature that needs scope takes an *Owner argument and fails with a
// *ConfigurationError when it cannot find what it needs.
//
// # Hook slots
//
// Owner.Render resets the owner's hook slot cursor so that hooks (memo.Use,
// callback.Use, store.Use) called in the same order on every render get the
// same slot back:
//
//	owner.Render(func() {
//	    total := memo.Use(owner, func() int { return sum(items) }, items)
//	    ...
//	})
//
// # Notification
//
// Listener, Notifier and Cycle implement "observer registration plus an
// explicit notify". A Cycle queues work submitted while a notification is in
// progress, so every observer of one cycle sees the same value and
// re-entrant updates are applied in program order.
//
// Signal[T] combines the three into a value container.
package reactive
