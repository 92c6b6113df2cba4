// Package callback issues function handles whose identity is stable while
// their dependencies are unchanged.
//
// Go functions cannot be compared, so a callback is handed out wrapped in a
// *Handle. Two calls to Wrap with shallow-equal dependencies return the same
// *Handle; consumers that skip work when their inputs are identical (for
// example a memo.Cell keyed on the handle) therefore skip it exactly when the
// callback's behavior has not changed:
//
//	var slot callback.Slot[func(string)]
//
//	onSearch := slot.Wrap(func(q string) { users.Set(filter(all, q)) }, all)
//	searchBox.Memoize(func() View { return renderSearch(onSearch) }, onSearch)
//
// When the dependencies are equal the previous handle, and the function it
// was created with, is returned; the new fn argument is discarded.
//
// Slots can be kept by hand, looked up by key in a Registry, or stored in an
// owner's hook slots with Use.
package callback
