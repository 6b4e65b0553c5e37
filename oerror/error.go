package oerror

import "fmt"

// Kind classifies an Error so callers can decide whether to surface it, swallow it or log it.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindInvalidArgument is returned for requests that are rejected before any computation.
	KindInvalidArgument
	// KindMissingDependency marks unconfigured content (no projectile class, no character). Operations
	// hitting it no-op instead of surfacing it.
	KindMissingDependency
	// KindHostQueryFailure marks a failed or panicking collaborator call. It is fail-open.
	KindHostQueryFailure
)

// String ...
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindMissingDependency:
		return "missing dependency"
	case KindHostQueryFailure:
		return "host query failure"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
	ErrMissingDependency = &Error{Kind: KindMissingDependency}
	ErrHostQueryFailure  = &Error{Kind: KindHostQueryFailure}
)

type Error struct {
	Kind Kind
	Err  string
}

// New returns an Error of unknown kind with a formatted message.
func New(format string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

// InvalidArgument ...
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Err: fmt.Sprintf(format, args...)}
}

// MissingDependency ...
func MissingDependency(format string, args ...any) *Error {
	return &Error{Kind: KindMissingDependency, Err: fmt.Sprintf(format, args...)}
}

// HostQueryFailure ...
func HostQueryFailure(format string, args ...any) *Error {
	return &Error{Kind: KindHostQueryFailure, Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err
}

// Is reports whether target is an *Error of the same kind, which lets the package level sentinels
// match any message through errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Err == "" || t.Err == e.Err)
}
