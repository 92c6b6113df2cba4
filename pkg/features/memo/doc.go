// Package memo caches derived values against a dependency list.
//
// A Cell remembers the last value it computed and the dependency list it was
// computed with. Calling Memoize with shallow-equal dependencies returns the
// cached value without running the computation:
//
//	var selected memo.Cell[*Item]
//
//	func render(items []Item, count int) {
//	    // Re-scans items only when the items slice itself changes,
//	    // not when count does.
//	    item := selected.Memoize(func() *Item { return findSelected(items) }, items)
//	    ...
//	}
//
// Inside an owner's render pass, Use keeps the cell in the owner's hook slot:
//
//	owner.Render(func() {
//	    theme := memo.Use(owner, func() Theme { return buildTheme(mode) }, mode)
//	})
//
// Dependency equality is reactive.SameValue, element by element. The cache
// only saves work; dropping it never changes results.
package memo
