package analyze

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal pipeline failure.
type Kind int

const (
	KindConfiguration Kind = iota + 1
	KindInputValidation
	KindUpstreamAPI
	KindModelInvocation
	KindOutputWrite
	// KindInternal is a failure inside the tool itself, between the two
	// network calls.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindInputValidation:
		return "input validation error"
	case KindUpstreamAPI:
		return "design API error"
	case KindModelInvocation:
		return "model invocation error"
	case KindOutputWrite:
		return "report write error"
	case KindInternal:
		return "internal error"
	default:
		return "error"
	}
}

// Error is a fatal failure of one pipeline step.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// ConfigError tags err as a configuration failure.
func ConfigError(err error) error { return newError(KindConfiguration, "load config", err) }

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ExitCode maps err to a process exit status: 0 for nil, 1 for any failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
