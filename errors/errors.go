package errors

import (
	"fmt"
	"strings"
)

// Op indicates which operation the error occurred in.
type Op string

const (
	OpInit   Op = "init"   // client construction
	OpPoll   Op = "poll"   // per-frame callback processing
	OpBind   Op = "bind"   // native symbol resolution
	OpLoad   Op = "load"   // shared library loading
	OpConfig Op = "config" // configuration parsing
)

// Kind categorizes the error.
type Kind string

const (
	KindSDKNotFound     Kind = "sdk_not_found"     // SDK library or symbol missing
	KindNotRunning      Kind = "not_running"       // Discord app not running
	KindInvalidClientID Kind = "invalid_client_id" // identifier rejected by the service
	KindUnsupported     Kind = "unsupported"       // platform or operation not supported
	KindClosed          Kind = "closed"            // handle already destroyed
	KindSDKFailure      Kind = "sdk_failure"       // any other SDK result code
	KindInternal        Kind = "internal"
)

// Error is the structured error type used throughout discord-frame.
type Error struct {
	Op     Op
	Kind   Kind
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by (Op, Kind).
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// SDKNotFound creates an error for a missing SDK library or symbol.
func SDKNotFound(op Op, detail string, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindSDKNotFound,
		Detail: detail,
		Cause:  cause,
	}
}

// Unsupported creates an error for an unsupported platform or operation.
func Unsupported(op Op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Closed creates an error for use of an already-destroyed handle.
func Closed(op Op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Internal creates an internal error with an underlying cause.
func Internal(op Op, detail string, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInternal,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with operation and kind context.
func Wrap(op Op, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// SDK creates an error for a non-Ok SDK result code.
func SDK(op Op, kind Kind, code int32, name string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: fmt.Sprintf("%s (result %d)", name, code),
	}
}
