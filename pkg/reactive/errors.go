package reactive

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoProvider is returned when a shared value is read or written from an
// owner that has no providing ancestor.
var ErrNoProvider = errors.New("statecore: no provider in scope")

// ErrDuplicateProvider is returned when a channel is provided twice on the
// same owner.
var ErrDuplicateProvider = errors.New("statecore: channel already provided on this owner")

// ErrNilOwner is returned when a scoped operation receives a nil owner.
var ErrNilOwner = errors.New("statecore: nil owner")

// ErrDisposed is returned when an operation targets a disposed owner.
var ErrDisposed = errors.New("statecore: owner disposed")

// ConfigurationError reports a wiring mistake: a scoped operation that cannot
// find the scope it needs. It is a programmer error and is always returned
// to (or panicked at) the caller, never swallowed.
type ConfigurationError struct {
	// Op is the operation that failed ("read", "write", "provide", "use").
	Op string

	// Name identifies the channel or store involved.
	Name string

	// Err is one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the sentinel for errors.Is support.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ErrorCode maps the error onto the diagnostic registry.
func (e *ConfigurationError) ErrorCode() string {
	switch {
	case errors.Is(e.Err, ErrNilOwner):
		return "E100"
	case errors.Is(e.Err, ErrNoProvider) && e.Op == "write":
		return "E102"
	case errors.Is(e.Err, ErrNoProvider):
		return "E101"
	case errors.Is(e.Err, ErrDuplicateProvider):
		return "E103"
	case errors.Is(e.Err, ErrDisposed):
		return "E104"
	default:
		return "E100"
	}
}

// HookSlotError is panicked when a hook finds a value of another type in its
// slot.
type HookSlotError struct {
	Index int
	Want  string
	Got   string
}

// Error implements the error interface.
func (e *HookSlotError) Error() string {
	return fmt.Sprintf("statecore: hook slot %d holds %s, want %s", e.Index, e.Got, e.Want)
}

// ErrorCode maps the error onto the diagnostic registry.
func (e *HookSlotError) ErrorCode() string {
	return "E120"
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
