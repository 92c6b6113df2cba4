package demo

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/statecore/internal/errors"
	"github.com/vango-dev/statecore/pkg/features/store"
	"github.com/vango-dev/statecore/pkg/metrics"
	"github.com/vango-dev/statecore/pkg/todo"
)

func run(t *testing.T, name string, env Env) []string {
	t.Helper()
	var buf bytes.Buffer
	env.Out = &buf
	require.NoError(t, Run(name, env))
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"counter", "search", "selection", "theme", "todo", "toggle"}, Names())
}

func TestUnknownDemo(t *testing.T) {
	err := Run("nope", Env{})
	var se *errors.StateError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, "E160", se.Code)
	assert.Equal(t, "nope", se.Subject)
	assert.Contains(t, se.Suggestion, "counter, search")
}

func TestCounter(t *testing.T) {
	assert.Equal(t, []string{
		"Count is 0",
		"Count is 1",
		"Count is 2",
		"Count is 1",
	}, run(t, "counter", Env{}))
}

func TestTodo(t *testing.T) {
	var seen []string
	record := func(next store.Transition[todo.Action]) store.Transition[todo.Action] {
		return func(a todo.Action) bool {
			seen = append(seen, a.ActionName())
			return next(a)
		}
	}

	lines := run(t, "todo", Env{TodoMiddlewares: []store.Middleware[todo.Action]{record}})
	assert.Equal(t, []string{
		`> add("Learn Go")`,
		"  [ ] 1 Learn Go",
		`> add("Write tests")`,
		"  [ ] 1 Learn Go",
		"  [ ] 2 Write tests",
		"> toggle(1)",
		"  [x] 1 Learn Go",
		"  [ ] 2 Write tests",
		`> add("   ")`,
		"  (no change)",
		"> remove(2)",
		"  [x] 1 Learn Go",
		"> toggle(99)",
		"  (no change)",
		`> add("Ship it")`,
		"  [x] 1 Learn Go",
		"  [ ] 3 Ship it",
	}, lines)
	assert.Len(t, seen, len(todoScript))
}

func TestPrintTasksEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintTasks(&buf, todo.List{})
	assert.Equal(t, "  (empty)\n", buf.String())
}

func TestTheme(t *testing.T) {
	m := metrics.New()
	lines := run(t, "theme", Env{Metrics: m})

	assert.Equal(t, []string{
		"Current Mode: dark (background #121212, palette builds 1)",
		"Current Mode: light (background #ffffff, palette builds 2)",
		"Current Mode: dark (background #121212, palette builds 3)",
		"Current Mode: dark (background #121212, palette builds 3)",
	}, lines)

	assert.Equal(t, 1.0, counterValue(t, m, "statecore_memo_lookups_total", map[string]string{"result": "hit"}))
	assert.Equal(t, 3.0, counterValue(t, m, "statecore_memo_lookups_total", map[string]string{"result": "miss"}))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, []string{
		"Current State: OFF",
		"Current State: ON",
		"Current State: OFF",
		"Current State: ON",
		"Orphan display: E101: Shared value read outside its provider",
	}, run(t, "toggle", Env{}))
}

func TestSelection(t *testing.T) {
	assert.Equal(t, []string{
		"Count: 0  Selected Item: 999  (scans: 1)",
		"Count: 1  Selected Item: 999  (scans: 1)",
		"Count: 2  Selected Item: 999  (scans: 1)",
		"Count: 3  Selected Item: 999  (scans: 1)",
	}, run(t, "selection", Env{SelectionSize: 1000}))
}

func TestSearch(t *testing.T) {
	m := metrics.New()
	lines := run(t, "search", Env{Seed: 42, Metrics: m})

	require.Len(t, lines, 10)
	assert.Equal(t, "== inline handler", lines[0])
	assert.Equal(t, "users: Nasir, Pranav  (Search renders: 2)", lines[1])
	assert.Equal(t, "users: Marcelo, Eugene, Eunhee  (Search renders: 3)", lines[2])
	assert.Equal(t, "users: Marcelo, Nisha, Eugene, Pasha, Nasir, Eunhee, Pradnya, Pranav  (Search renders: 5)", lines[4])

	assert.Equal(t, "== stable handler", lines[5])
	assert.Equal(t, "users: Nasir, Pranav  (Search renders: 1)", lines[6])
	assert.Equal(t, "users: Marcelo, Eugene, Eunhee  (Search renders: 1)", lines[7])
	assert.True(t, strings.HasSuffix(lines[8], "(Search renders: 1)"))
	assert.Equal(t, "users: Marcelo, Nisha, Eugene, Pasha, Nasir, Eunhee, Pradnya, Pranav  (Search renders: 1)", lines[9])

	assert.Equal(t, 4.0, counterValue(t, m, "statecore_callback_wraps_total", map[string]string{"result": "reused"}))
	assert.Equal(t, 1.0, counterValue(t, m, "statecore_callback_wraps_total", map[string]string{"callback": "handleSearch", "result": "reissued"}))
	assert.Equal(t, 5.0, counterValue(t, m, "statecore_callback_wraps_total", map[string]string{"callback": "handleSearchUnstable", "result": "reissued"}))
}

func TestFilterUsers(t *testing.T) {
	assert.Equal(t, []string{"Nasir", "Pranav"}, FilterUsers(AllUsers, "NA"))
	assert.Equal(t, AllUsers, FilterUsers(AllUsers, ""))
	assert.Empty(t, FilterUsers(AllUsers, "zz"))
}

func TestFindSelected(t *testing.T) {
	it, ok := FindSelected(NewItems(5))
	require.True(t, ok)
	assert.Equal(t, 4, it.ID)

	_, ok = FindSelected(nil)
	assert.False(t, ok)
}

// counterValue sums the series of family whose labels include every pair in
// match.
func counterValue(t *testing.T, m *metrics.Collector, family string, match map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	total := 0.0
	for _, f := range families {
		if f.GetName() != family {
			continue
		}
		for _, metric := range f.GetMetric() {
			found := 0
			for _, l := range metric.GetLabel() {
				if v, ok := match[l.GetName()]; ok && v == l.GetValue() {
					found++
				}
			}
			if found == len(match) {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	return total
}
