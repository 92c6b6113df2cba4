package replay

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/statecore/internal/errors"
	"github.com/vango-dev/statecore/pkg/todo"
)

const script = `# groceries
- add: "Buy milk"
- add: Walk the dog
- toggle: 1
- add: "   "
- remove: 2
- remove: 2
`

func TestParse(t *testing.T) {
	steps, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	require.Len(t, steps, 6)
	assert.Equal(t, todo.Add{Text: "Buy milk"}, steps[0].Action)
	assert.Equal(t, 2, steps[0].Line)
	assert.Equal(t, todo.Add{Text: "Walk the dog"}, steps[1].Action)
	assert.Equal(t, todo.Toggle{ID: 1}, steps[2].Action)
	assert.Equal(t, todo.Remove{ID: 2}, steps[4].Action)
}

func TestParseEmpty(t *testing.T) {
	steps, err := Parse(strings.NewReader("\n  \n"))
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"unknown action", "- rename: 1\n", `unknown action "rename"`},
		{"two keys", "- add: a\n  toggle: 1\n", "exactly one"},
		{"scalar entry", "- add\n", "exactly one"},
		{"bad id", "- toggle: first\n", "toggle wants a task id"},
		{"negative id", "- remove: -1\n", "remove wants a task id"},
		{"not a list", "add: x\n", "cannot unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)

			var se *errors.StateError
			require.True(t, stderrors.As(err, &se))
			assert.Equal(t, "E161", se.Code)
			assert.Contains(t, se.Detail, tt.wantMsg)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))

	steps, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, steps, 6)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- nope: 1\n"), 0644))
	_, err = ParseFile(bad)
	var se *errors.StateError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, bad, se.Subject)
}

func TestApply(t *testing.T) {
	steps, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	s := todo.NewStore()
	var changed []bool
	Apply(s, steps, func(_ Step, c bool) { changed = append(changed, c) })

	assert.Equal(t, []bool{true, true, true, false, true, false}, changed)
	assert.Equal(t, []todo.Task{{ID: 1, Text: "Buy milk", Completed: true}}, s.State().Tasks())
}

func TestEncodeRoundTrip(t *testing.T) {
	steps := []Step{
		{Action: todo.Add{Text: "Buy milk"}},
		{Action: todo.Toggle{ID: 1}},
		{Action: todo.Remove{ID: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, steps))
	assert.Equal(t, "- add: Buy milk\n- toggle: 1\n- remove: 1\n", buf.String())

	back, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, back, 3)
	for i := range steps {
		assert.Equal(t, steps[i].Action, back[i].Action)
	}
}
