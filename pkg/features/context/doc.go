// Package context shares one value with every descendant of an owner
// without passing it through each level by hand.
//
// A Channel is declared once. An ancestor owner provides it; descendants
// look it up through their owner and get a Handle with read access and the
// mutator capability:
//
//	var Toggle = context.Create[bool]("toggle")
//
//	func Parent(owner *reactive.Owner) {
//	    Toggle.MustProvide(owner, false)
//	    ChildToggle(reactive.NewOwner(owner))
//	    ChildDisplay(reactive.NewOwner(owner))
//	}
//
//	func ChildToggle(owner *reactive.Owner) {
//	    h := Toggle.MustUse(owner)
//	    h.Update(func(on bool) bool { return !on })
//	}
//
// Looking up a channel that no ancestor provides is a wiring mistake: Use,
// Read and Write return a *reactive.ConfigurationError wrapping
// reactive.ErrNoProvider, and MustUse panics with it. There is no default
// value to fall back to.
//
// Writes are synchronous. Every subscriber is notified after each change,
// and a write issued while subscribers are being notified is committed only
// after that pass, so all subscribers of one pass read the same value.
package context
