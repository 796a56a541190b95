// Package domainerrors provides coded domain errors for business-rule
// violations. Services and domain methods return these so callers can map
// failures to client-facing responses without string matching.
//
// For infrastructure facts (not found, conflict, expired) use
// pkg/platform/sentinel; for argument validation use pkg/guard.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code is a stable machine-readable classification of a domain error.
type Code string

// Supported error codes.
const (
	CodeInvalidInput       Code = "invalid_input"
	CodeValidation         Code = "validation_failed"
	CodeInvariantViolation Code = "invariant_violation"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeTimeout            Code = "timeout"
	CodeInternal           Code = "internal"
)

// Error is a domain error carrying a code, a human-readable message, and an
// optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New constructs a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable through errors.Is / errors.As.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another domain error by code, so
// errors.Is(err, New(CodeNotFound, "")) works without message equality.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// HasCode reports whether err is (or wraps) a domain error with the given
// code.
func HasCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// CodeOf extracts the code from err, or CodeInternal when err carries no
// domain error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
