package core

import "fmt"

// ErrorKind classifies an Error per spec.md §7.
type ErrorKind int

const (
	// ErrKindParse marks a malformed input line (missing fields,
	// non-integer ids).
	ErrKindParse ErrorKind = iota

	// ErrKindBuild marks a builder rejecting an edge list (e.g. a typed
	// edge with an unknown type).
	ErrKindBuild

	// ErrKindPrecondition marks an algorithm precondition failure, e.g.
	// "graph is empty" or "graph must be connected".
	ErrKindPrecondition

	// ErrKindNumeric marks a spectral failure: non-convergence or a
	// non-finite result.
	ErrKindNumeric

	// ErrKindIO marks an input/output stream failure.
	ErrKindIO

	// ErrKindGeneric covers anything else, with a human-readable message.
	ErrKindGeneric
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindParse:
		return "ParseError"
	case ErrKindBuild:
		return "BuildError"
	case ErrKindPrecondition:
		return "AlgorithmPrecondition"
	case ErrKindNumeric:
		return "NumericError"
	case ErrKindIO:
		return "IOError"
	default:
		return "Generic"
	}
}

// Error is the single result type used across core, builder, algorithms,
// and transform, per spec.md §7.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause so errors.Is/As work across packages.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, core.AlgorithmPrecondition) against the sentinels
// below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel markers for errors.Is comparisons; they carry no message of
// their own and are never returned directly.
var (
	ParseErrorKind        = &Error{Kind: ErrKindParse}
	BuildErrorKind        = &Error{Kind: ErrKindBuild}
	AlgorithmPrecondition = &Error{Kind: ErrKindPrecondition}
	NumericErrorKind      = &Error{Kind: ErrKindNumeric}
	IOErrorKind           = &Error{Kind: ErrKindIO}
)

// NewParseError builds a parse-failure Error.
func NewParseError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindParse, Msg: msg, Err: cause}
}

// NewBuildError builds a builder-rejection Error.
func NewBuildError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindBuild, Msg: msg, Err: cause}
}

// NewPreconditionError builds an algorithm-precondition Error.
func NewPreconditionError(msg string) *Error {
	return &Error{Kind: ErrKindPrecondition, Msg: msg}
}

// NewNumericError builds a spectral-failure Error.
func NewNumericError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindNumeric, Msg: msg, Err: cause}
}

// NewIOError builds an IO-failure Error.
func NewIOError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindIO, Msg: msg, Err: cause}
}

// NewGenericError builds a catch-all Error.
func NewGenericError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindGeneric, Msg: msg, Err: cause}
}
