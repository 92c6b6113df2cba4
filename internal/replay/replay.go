// Package replay reads todo action scripts written in YAML and applies them
// to a store.
//
// A script is a list with one action per entry:
//
//	- add: "Buy milk"
//	- add: Walk the dog
//	- toggle: 1
//	- remove: 2
package replay

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/statecore/internal/errors"
	"github.com/vango-dev/statecore/pkg/todo"
)

// Step is one scripted action and the line it was read from.
type Step struct {
	Action todo.Action
	Line   int
}

// UnmarshalYAML decodes a single-key mapping into a todo action.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	s.Line = node.Line
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: entry must have exactly one of add, toggle or remove", node.Line)
	}

	key, value := node.Content[0].Value, node.Content[1]
	switch key {
	case "add":
		var text string
		if err := value.Decode(&text); err != nil {
			return fmt.Errorf("line %d: add: %w", value.Line, err)
		}
		s.Action = todo.Add{Text: text}
	case "toggle", "remove":
		var id uint64
		if err := value.Decode(&id); err != nil {
			return fmt.Errorf("line %d: %s wants a task id: %w", value.Line, key, err)
		}
		if key == "toggle" {
			s.Action = todo.Toggle{ID: todo.TaskID(id)}
		} else {
			s.Action = todo.Remove{ID: todo.TaskID(id)}
		}
	default:
		return fmt.Errorf("line %d: unknown action %q", node.Content[0].Line, key)
	}
	return nil
}

// MarshalYAML encodes the step back into its single-key form.
func (s Step) MarshalYAML() (any, error) {
	switch a := s.Action.(type) {
	case todo.Add:
		return map[string]string{"add": a.Text}, nil
	case todo.Toggle:
		return map[string]uint64{"toggle": uint64(a.ID)}, nil
	case todo.Remove:
		return map[string]uint64{"remove": uint64(a.ID)}, nil
	default:
		return nil, fmt.Errorf("cannot encode action %T", s.Action)
	}
}

// Parse reads a script. Malformed scripts yield an E161 error.
func Parse(r io.Reader) ([]Step, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E161").Wrap(err)
	}

	var steps []Step
	if len(bytes.TrimSpace(data)) == 0 {
		return steps, nil
	}
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, errors.New("E161").WithDetail(err.Error()).Wrap(err)
	}
	return steps, nil
}

// ParseFile reads the script at path.
func ParseFile(path string) ([]Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("E161").WithSubject(path).Wrap(err)
	}
	defer f.Close()

	steps, err := Parse(f)
	if err != nil {
		if se, ok := err.(*errors.StateError); ok {
			se.WithSubject(path)
		}
		return nil, err
	}
	return steps, nil
}

// Encode writes steps as a script.
func Encode(w io.Writer, steps []Step) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(steps); err != nil {
		return err
	}
	return enc.Close()
}

// Apply dispatches every step in order. If report is non-nil it is called
// after each dispatch with whether the state changed.
func Apply(s *todo.Store, steps []Step, report func(step Step, changed bool)) {
	for _, step := range steps {
		before := s.Version()
		s.Dispatch(step.Action)
		if report != nil {
			report(step, s.Version() != before)
		}
	}
}
