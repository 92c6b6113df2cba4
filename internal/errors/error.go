package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryScope  Category = "scope"
	CategoryHook   Category = "hook"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// StateError is a structured error with a code, a hint and documentation.
type StateError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Subject names the channel, slot or file the error is about.
	Subject string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *StateError) Error() string {
	msg := e.Message
	if e.Subject != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Subject)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *StateError) Unwrap() error {
	return e.Wrapped
}

// WithSubject names the thing the error is about.
func (e *StateError) WithSubject(s string) *StateError {
	e.Subject = s
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *StateError) WithSuggestion(s string) *StateError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation of the error.
func (e *StateError) WithDetail(d string) *StateError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *StateError) Wrap(err error) *StateError {
	e.Wrapped = err
	return e
}

// New creates a StateError from a registered error code.
func New(code string) *StateError {
	template, ok := registry[code]
	if !ok {
		return &StateError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &StateError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
		DocURL:     template.DocURL,
	}
}

// Newf creates a new StateError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *StateError {
	return &StateError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Coded is implemented by library errors that map onto a registered code.
type Coded interface {
	error
	ErrorCode() string
}

// FromError converts err into a StateError. Errors that already are a
// StateError are returned as is; errors carrying a code (anywhere in their
// chain) use that code; anything else gets fallback.
func FromError(err error, fallback string) *StateError {
	if err == nil {
		return nil
	}
	var se *StateError
	if stderrors.As(err, &se) {
		return se
	}
	code := fallback
	var coded Coded
	if stderrors.As(err, &coded) {
		code = coded.ErrorCode()
	}
	return New(code).Wrap(err)
}
