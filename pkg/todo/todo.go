package todo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vango-dev/statecore/pkg/features/store"
	"github.com/vango-dev/statecore/pkg/reactive"
)

// TaskID identifies a task within one store.
type TaskID uint64

// Task is one entry of the list.
type Task struct {
	ID        TaskID `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// List is the store state: tasks in insertion order plus the last minted ID.
// The zero value is an empty list whose first task gets ID 1.
type List struct {
	tasks  []Task
	lastID TaskID
}

// Tasks returns a copy of the tasks in order.
func (l List) Tasks() []Task {
	return slices.Clone(l.tasks)
}

// Len returns the number of tasks.
func (l List) Len() int {
	return len(l.tasks)
}

// Find returns the task with the given ID.
func (l List) Find(id TaskID) (Task, bool) {
	if i := l.index(id); i >= 0 {
		return l.tasks[i], true
	}
	return Task{}, false
}

// LastID returns the most recently minted ID, or 0 if none was minted.
func (l List) LastID() TaskID {
	return l.lastID
}

// Remaining returns the number of tasks not completed.
func (l List) Remaining() int {
	n := 0
	for _, t := range l.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (l List) index(id TaskID) int {
	return slices.IndexFunc(l.tasks, func(t Task) bool { return t.ID == id })
}

// Kind enumerates the action kinds.
type Kind uint8

const (
	KindAdd Kind = iota + 1
	KindToggle
	KindRemove
)

// String returns the action kind name.
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindToggle:
		return "toggle"
	case KindRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Action is a requested transition. Only Add, Toggle and Remove implement
// it. Pointers to them are accepted too and reduce like the value they point
// to; a nil pointer is a no-op.
type Action interface {
	Kind() Kind
	ActionName() string
	isAction()
}

// Add appends a task with Text unless Text is blank.
type Add struct {
	Text string
}

// Toggle flips Completed on the task with ID.
type Toggle struct {
	ID TaskID
}

// Remove deletes the task with ID.
type Remove struct {
	ID TaskID
}

func (Add) Kind() Kind    { return KindAdd }
func (Toggle) Kind() Kind { return KindToggle }
func (Remove) Kind() Kind { return KindRemove }

func (a Add) ActionName() string    { return a.Kind().String() }
func (a Toggle) ActionName() string { return a.Kind().String() }
func (a Remove) ActionName() string { return a.Kind().String() }

func (Add) isAction()    {}
func (Toggle) isAction() {}
func (Remove) isAction() {}

func (a Add) String() string    { return fmt.Sprintf("add(%q)", a.Text) }
func (a Toggle) String() string { return fmt.Sprintf("toggle(%d)", a.ID) }
func (a Remove) String() string { return fmt.Sprintf("remove(%d)", a.ID) }

// Reduce returns the List that follows action and whether it differs from
// l. It never modifies l.
func Reduce(l List, action Action) (List, bool) {
	switch a := deref(action).(type) {
	case Add:
		if strings.TrimSpace(a.Text) == "" {
			return l, false
		}
		id := l.lastID + 1
		tasks := make([]Task, len(l.tasks), len(l.tasks)+1)
		copy(tasks, l.tasks)
		tasks = append(tasks, Task{ID: id, Text: a.Text})
		return List{tasks: tasks, lastID: id}, true

	case Toggle:
		i := l.index(a.ID)
		if i < 0 {
			return l, false
		}
		tasks := slices.Clone(l.tasks)
		tasks[i].Completed = !tasks[i].Completed
		return List{tasks: tasks, lastID: l.lastID}, true

	case Remove:
		i := l.index(a.ID)
		if i < 0 {
			return l, false
		}
		tasks := make([]Task, 0, len(l.tasks)-1)
		tasks = append(tasks, l.tasks[:i]...)
		tasks = append(tasks, l.tasks[i+1:]...)
		return List{tasks: tasks, lastID: l.lastID}, true

	default:
		return l, false
	}
}

func deref(action Action) Action {
	switch a := action.(type) {
	case *Add:
		if a != nil {
			return *a
		}
	case *Toggle:
		if a != nil {
			return *a
		}
	case *Remove:
		if a != nil {
			return *a
		}
	default:
		return action
	}
	return nil
}

// Store is a store of Lists driven by Actions.
type Store = store.Store[List, Action]

// NewStore creates an empty task store named "todo".
func NewStore(opts ...store.Option) *Store {
	return store.New(List{}, Reduce, append([]store.Option{store.WithName("todo")}, opts...)...)
}

// UseStore keeps an empty task store in the owner's next hook slot.
func UseStore(owner *reactive.Owner, opts ...store.Option) *Store {
	return store.Use(owner, List{}, Reduce, append([]store.Option{store.WithName("todo")}, opts...)...)
}
