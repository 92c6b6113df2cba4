// Package features groups the state primitives built on pkg/reactive.
//
// # Subsystems
//
// Each subsystem is in its own sub-package and can be imported independently:
//
//   - store: reducer-driven state containers with transition middleware
//   - context: values shared with every descendant of a providing owner
//   - memo: derived values recomputed only when their dependencies change
//   - callback: function handles whose identity survives re-renders
//
// The hook forms (store.Use, memo.Use, callback.Use) keep their state in the
// calling owner's hook slots, so they must run unconditionally and in the
// same order on every render pass:
//
//	owner.Render(func() {
//	    tasks := todo.UseStore(owner)
//	    remaining := memo.Use(owner, tasks.State().Remaining, tasks.Version())
//	    onAdd := callback.Use(owner, func(text string) {
//	        tasks.Dispatch(todo.Add{Text: text})
//	    }, tasks)
//	    render(remaining, onAdd)
//	})
package features
