// Package todo is the task-list state machine: a List of Tasks changed only
// through the three Action kinds Add, Toggle and Remove.
//
//	s := todo.NewStore()
//	s.Dispatch(todo.Add{Text: "Buy milk"})
//	id := s.State().Tasks()[0].ID
//	s.Dispatch(todo.Toggle{ID: id})
//	s.Dispatch(todo.Remove{ID: id})
//
// Reduce is pure. Task IDs come from a counter carried inside the List, so
// they are monotonic and never reused within one store, and replaying the
// same actions from the same List always yields the same result.
//
// Blank Add text, Toggle or Remove of an unknown ID and unknown action
// values leave the List unchanged and notify nobody.
package todo
