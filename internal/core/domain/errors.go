package domain

import (
	"errors"
	"strings"
)

// ErrorKind classifies a ValidationError so the HTTP boundary can choose a
// status code without string matching.
type ErrorKind int

const (
	KindMissingField ErrorKind = iota + 1
	KindInvalidField
	KindDuplicateField
	KindUnauthorized
	KindNotFound
	KindWrongValue
)

// ValidationError is the tagged error produced by validators and the
// registration/login services. It carries the offending field and, when
// useful, a short reason. The reason is structured detail for callers and
// logs; Error() keeps the fixed per-kind message forms.
type ValidationError struct {
	Kind   ErrorKind
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return "Required parameter missing: " + e.Field
	case KindInvalidField:
		return "Invalid parameter: " + e.Field
	case KindDuplicateField:
		return titleField(e.Field) + " already registered"
	case KindUnauthorized:
		return "Unauthorized"
	case KindNotFound:
		return titleField(e.Field) + " not found"
	case KindWrongValue:
		return "Wrong value for parameter: " + e.Field
	}
	return "validation failed"
}

// Is lets errors.Is match two validation errors of the same kind and field,
// so callers can compare against a constructor result.
func (e *ValidationError) Is(target error) bool {
	var ve *ValidationError
	if !errors.As(target, &ve) {
		return false
	}
	return e.Kind == ve.Kind && e.Field == ve.Field
}

// MissingField reports an absent required field.
func MissingField(field string) *ValidationError {
	return &ValidationError{Kind: KindMissingField, Field: field}
}

// InvalidField reports a malformed field value. reason may be empty.
func InvalidField(field, reason string) *ValidationError {
	return &ValidationError{Kind: KindInvalidField, Field: field, Reason: reason}
}

// DuplicateField reports a uniqueness violation.
func DuplicateField(field string) *ValidationError {
	return &ValidationError{Kind: KindDuplicateField, Field: field}
}

// NotFound reports that the named record does not exist.
func NotFound(name string) *ValidationError {
	return &ValidationError{Kind: KindNotFound, Field: name}
}

// WrongValue reports a value that is well-formed but does not match the
// stored one, e.g. the current password on a password change.
func WrongValue(field string) *ValidationError {
	return &ValidationError{Kind: KindWrongValue, Field: field}
}

// ErrUnauthorized is the single shared failure value for both unknown-email
// and wrong-password logins. Returning the same value for both keeps the
// responses indistinguishable (anti-enumeration).
var ErrUnauthorized = &ValidationError{Kind: KindUnauthorized}

// ErrUserNotFound is returned by UserStore lookups that match no record.
var ErrUserNotFound = errors.New("user not found")

// ErrTooManyAttempts is returned when the login throttle rejects an attempt
// before any credential check runs.
var ErrTooManyAttempts = errors.New("too many login attempts")

// StoreError wraps an infrastructure failure from the UserStore. It is the
// only error class presented to end users without detail.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return "store: " + e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func titleField(field string) string {
	if field == "" {
		return "Record"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
