package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so transports can map them without inspecting messages.
type ErrorKind string

const (
	KindUnauthenticated   ErrorKind = "unauthenticated"
	KindForbidden         ErrorKind = "forbidden"
	KindNotFound          ErrorKind = "not_found"
	KindInvalidArgument   ErrorKind = "invalid_argument"
	KindConflict          ErrorKind = "conflict"
	KindResourceExhausted ErrorKind = "resource_exhausted"
	KindUnavailable       ErrorKind = "unavailable"
	KindInternal          ErrorKind = "internal"
)

// Conflict reasons surfaced to callers.
const (
	ReasonEmailMismatch     = "email_mismatch"
	ReasonOwnershipMismatch = "ownership_mismatch"
	ReasonTenantSuspended   = "tenant_suspended"
	ReasonInvalidTransition = "invalid_transition"
	ReasonEmailExists       = "email_exists"
)

// Error is the error type returned by services. Message is safe to show to
// callers; Err carries the underlying cause for logs only.
type Error struct {
	Kind    ErrorKind
	Message string
	Reason  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithReason returns a copy of e carrying reason.
func (e *Error) WithReason(reason string) *Error {
	cp := *e
	cp.Reason = reason
	return &cp
}

func newError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

func Unauthenticated(msg string) *Error {
	return newError(KindUnauthenticated, msg, nil)
}

func Forbidden(msg string) *Error {
	return newError(KindForbidden, msg, nil)
}

func NotFound(msg string) *Error {
	return newError(KindNotFound, msg, nil)
}

func InvalidArgument(msg string) *Error {
	return newError(KindInvalidArgument, msg, nil)
}

func Conflict(msg, reason string) *Error {
	return &Error{Kind: KindConflict, Message: msg, Reason: reason}
}

func ResourceExhausted(msg string) *Error {
	return newError(KindResourceExhausted, msg, nil)
}

func Unavailable(msg string, cause error) *Error {
	return newError(KindUnavailable, msg, cause)
}

func Internal(msg string, cause error) *Error {
	return newError(KindInternal, msg, cause)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}
