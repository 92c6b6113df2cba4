package demo

import (
	"fmt"
	"io"

	"github.com/vango-dev/statecore/pkg/features/store"
	"github.com/vango-dev/statecore/pkg/reactive"
	"github.com/vango-dev/statecore/pkg/todo"
)

// todoScript exercises every action, including the ones that change nothing.
var todoScript = []todo.Action{
	todo.Add{Text: "Learn Go"},
	todo.Add{Text: "Write tests"},
	todo.Toggle{ID: 1},
	todo.Add{Text: "   "},
	todo.Remove{ID: 2},
	todo.Toggle{ID: 99},
	todo.Add{Text: "Ship it"},
}

func runTodo(env Env) error {
	root := reactive.NewOwner(nil)
	defer root.Dispose()

	s := todo.UseStore(root, store.WithLogger(env.logger()))
	s.Use(env.TodoMiddlewares...)

	s.Subscribe(func() {
		PrintTasks(env.Out, s.State())
	})

	for _, action := range todoScript {
		fmt.Fprintf(env.Out, "> %s\n", action)
		before := s.Version()
		s.Dispatch(action)
		if s.Version() == before {
			fmt.Fprintln(env.Out, "  (no change)")
		}
	}
	return nil
}

// PrintTasks renders the list one task per line.
func PrintTasks(w io.Writer, l todo.List) {
	if l.Len() == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	for _, t := range l.Tasks() {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %d %s\n", mark, t.ID, t.Text)
	}
}
