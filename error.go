package argv

import (
	"errors"
	"fmt"
)

// ErrTerminated is raised after a built-in option (--help or --version)
// has written its output. It is a control signal, not a failure: callers
// of Parse must map it to a clean, zero-status exit.
var ErrTerminated = errors.New("terminated")

// ErrorKind classifies the errors produced during grammar registration
// and parsing.
type ErrorKind uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ErrorKind = iota

	// ErrConfig indicates an invalid grammar registration call
	// (bad option shape, ordering violation, duplicate name).
	ErrConfig

	// ErrInvalidOption indicates an unknown option token.
	ErrInvalidOption

	// ErrInvalidSubcommand indicates an unknown subcommand token.
	ErrInvalidSubcommand

	// ErrDuplicateOption indicates a single-occurrence option that was
	// given more than once.
	ErrDuplicateOption

	// ErrOutOfData indicates that an option expected a value but the
	// command line had no word left to consume.
	ErrOutOfData

	// ErrMissingPositional indicates a required positional argument
	// that was absent from the command line.
	ErrMissingPositional

	// ErrUnusedArgument indicates a leftover word the grammar could
	// not account for.
	ErrUnusedArgument

	// ErrUnknownArgument indicates a Result lookup with a name that
	// was never declared.
	ErrUnknownArgument
)

func (k ErrorKind) String() string {
	kinds := [...]string{
		"unknown",            // ErrUnknown
		"configuration",      // ErrConfig
		"invalid option",     // ErrInvalidOption
		"invalid subcommand", // ErrInvalidSubcommand
		"duplicate option",   // ErrDuplicateOption
		"out of data",        // ErrOutOfData
		"missing positional", // ErrMissingPositional
		"unused argument",    // ErrUnusedArgument
		"unknown argument",   // ErrUnknownArgument
	}
	if int(k) >= len(kinds) {
		return "unrecognized error kind"
	}

	return kinds[k]
}

// Error is the error type returned from registration calls and from
// Parse. The Message is the literal diagnostic text; Suggestion, when
// non-empty, carries the closest declared name for unknown option or
// subcommand tokens, as side-band data for frontends that want to print
// a "did you mean" hint.
type Error struct {
	// The kind of error
	Kind ErrorKind

	// The diagnostic message
	Message string

	// The closest declared name, if one is close enough
	Suggestion string
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// IsConfig is a helper to test whether an error returned from a
// registration call or Parse is a grammar configuration error, as
// opposed to a parse error. It is safe to call on a nil error.
func IsConfig(err error) bool {
	var perr *Error
	if !errors.As(err, &perr) {
		return false
	}

	return perr.Kind == ErrConfig
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

func newErrorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return newError(kind, fmt.Sprintf(format, args...))
}
