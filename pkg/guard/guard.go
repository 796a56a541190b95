// Package guard provides fail-fast precondition checks for domain-object
// constructors and mutating domain methods.
//
// Each check either returns nil or an error describing the violated
// precondition and the offending parameter. Go has no caller-argument
// expression capture, so parameter names are passed explicitly. Checks are
// synchronous, side-effect free, and cheap enough to run on every
// construction.
//
// Failed checks return *ArgumentError, or *MissingArgumentError for
// nil/absence violations. The WithError variant returns whatever the caller's
// factory produces, typically a coded error from pkg/domain-errors for
// business-rule violations.
package guard

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// ArgumentError reports a parameter value that violated a precondition.
type ArgumentError struct {
	Param   string
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Param == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Param, e.Message)
}

// MissingArgumentError reports a required parameter that was nil or absent.
// It is a specialization of ArgumentError with the same propagation rules.
type MissingArgumentError struct {
	Param   string
	Message string
}

func (e *MissingArgumentError) Error() string {
	if e.Param == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Param, e.Message)
}

// That fails unless cond holds.
func That(cond bool, param, message string) error {
	if cond {
		return nil
	}
	return &ArgumentError{Param: param, Message: message}
}

// ThatNot fails when cond holds. Negated form of That for preconditions that
// read more naturally as prohibitions.
func ThatNot(cond bool, param, message string) error {
	return That(!cond, param, message)
}

// WithError fails with the caller-supplied error unless cond holds. Use this
// for business-rule checks that must surface a domain error with a structured
// code rather than a plain argument error.
func WithError(cond bool, errFn func() error) error {
	if cond {
		return nil
	}
	return errFn()
}

// NotNil fails when v is nil, including typed nil pointers, maps, slices,
// channels, functions, and interfaces hiding a nil pointer.
func NotNil(v any, param string) error {
	if v == nil {
		return &MissingArgumentError{Param: param, Message: "must not be nil"}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return &MissingArgumentError{Param: param, Message: "must not be nil"}
		}
	}
	return nil
}

// NotZero fails when v is its type's zero value. This is the optional-value
// form of the absence check for value types that encode "unset" as zero
// (uuid.Nil, time.Time{}, empty typed strings).
func NotZero[T comparable](v T, param string) error {
	var zero T
	if v == zero {
		return &MissingArgumentError{Param: param, Message: "must not be zero"}
	}
	return nil
}

// NotEmpty fails when s is the empty string.
func NotEmpty(s string, param string) error {
	if s == "" {
		return &ArgumentError{Param: param, Message: "must not be empty"}
	}
	return nil
}

// NotBlank fails when s is empty or consists solely of whitespace.
func NotBlank(s string, param string) error {
	if strings.TrimSpace(s) == "" {
		return &ArgumentError{Param: param, Message: "must not be blank"}
	}
	return nil
}

// NotEmptySlice fails when items is nil or has no elements.
func NotEmptySlice[T any](items []T, param string) error {
	if len(items) == 0 {
		return &ArgumentError{Param: param, Message: "must contain at least one element"}
	}
	return nil
}

// Between fails unless lo <= v <= hi. Both bounds are inclusive.
func Between[T cmp.Ordered](v, lo, hi T, param string) error {
	if v < lo || v > hi {
		return &ArgumentError{
			Param:   param,
			Message: fmt.Sprintf("must be between %v and %v, got %v", lo, hi, v),
		}
	}
	return nil
}

// GreaterThan fails unless v > bound.
func GreaterThan[T cmp.Ordered](v, bound T, param string) error {
	if v <= bound {
		return &ArgumentError{
			Param:   param,
			Message: fmt.Sprintf("must be greater than %v, got %v", bound, v),
		}
	}
	return nil
}

// AtLeast fails unless v >= bound.
func AtLeast[T cmp.Ordered](v, bound T, param string) error {
	if v < bound {
		return &ArgumentError{
			Param:   param,
			Message: fmt.Sprintf("must be at least %v, got %v", bound, v),
		}
	}
	return nil
}

// LessThan fails unless v < bound.
func LessThan[T cmp.Ordered](v, bound T, param string) error {
	if v >= bound {
		return &ArgumentError{
			Param:   param,
			Message: fmt.Sprintf("must be less than %v, got %v", bound, v),
		}
	}
	return nil
}

// AtMost fails unless v <= bound.
func AtMost[T cmp.Ordered](v, bound T, param string) error {
	if v > bound {
		return &ArgumentError{
			Param:   param,
			Message: fmt.Sprintf("must be at most %v, got %v", bound, v),
		}
	}
	return nil
}

// Satisfies fails unless pred(v) holds.
func Satisfies[T any](v T, pred func(T) bool, param, message string) error {
	if pred(v) {
		return nil
	}
	return &ArgumentError{Param: param, Message: message}
}

// NotSatisfies fails when pred(v) holds.
func NotSatisfies[T any](v T, pred func(T) bool, param, message string) error {
	if !pred(v) {
		return nil
	}
	return &ArgumentError{Param: param, Message: message}
}
