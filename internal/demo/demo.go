// Package demo holds the teaching demos rebuilt on the state core. Each
// demo drives its components through a fixed script and prints what they
// render after every change.
package demo

import (
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/vango-dev/statecore/internal/errors"
	"github.com/vango-dev/statecore/pkg/features/store"
	"github.com/vango-dev/statecore/pkg/metrics"
	"github.com/vango-dev/statecore/pkg/todo"
)

// Env is what a demo runs against.
type Env struct {
	// Out receives the rendered output.
	Out io.Writer

	// Logger is passed to stores. Default: slog.Default().
	Logger *slog.Logger

	// Metrics, if set, observes memo cells, callbacks and context channels.
	Metrics *metrics.Collector

	// TodoMiddlewares wrap the todo store's transitions.
	TodoMiddlewares []store.Middleware[todo.Action]

	// SelectionSize is the item count of the selection demo.
	SelectionSize int

	// Seed seeds the search demo's shuffle.
	Seed uint64
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Demo is one runnable example.
type Demo struct {
	Name        string
	Description string
	Run         func(Env) error
}

var demos = map[string]Demo{}

func register(d Demo) {
	demos[d.Name] = d
}

func init() {
	register(Demo{Name: "counter", Description: "local state with functional updates", Run: runCounter})
	register(Demo{Name: "todo", Description: "reducer-driven task list", Run: runTodo})
	register(Demo{Name: "theme", Description: "theme mode shared through a context channel", Run: runTheme})
	register(Demo{Name: "toggle", Description: "sibling components sharing one flag", Run: runToggle})
	register(Demo{Name: "selection", Description: "memoized scan of a large list", Run: runSelection})
	register(Demo{Name: "search", Description: "stable callback keeps a memoized child from re-rendering", Run: runSearch})
}

// Names returns the registered demo names in sorted order.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named demo. Unknown names yield an E160 error.
func Lookup(name string) (Demo, error) {
	d, ok := demos[name]
	if !ok {
		return Demo{}, errors.New("E160").
			WithSubject(name).
			WithSuggestion("Available demos: " + strings.Join(Names(), ", "))
	}
	return d, nil
}

// Run runs the named demo.
func Run(name string, env Env) error {
	d, err := Lookup(name)
	if err != nil {
		return err
	}
	if env.Out == nil {
		env.Out = io.Discard
	}
	return d.Run(env)
}
