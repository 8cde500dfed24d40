// Package apperror defines the error taxonomy shared by services and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation         Kind = "validation_error"
	KindMalformedRequest   Kind = "malformed_request"
	KindDuplicateEmail     Kind = "duplicate_email"
	KindDuplicateUsername  Kind = "duplicate_username"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindNotFound           Kind = "not_found"
	KindUnauthenticated    Kind = "unauthenticated"
	KindStoreFailure       Kind = "store_failure"
)

// Kinds lists every kind that has a user-facing message.
var Kinds = []Kind{
	KindValidation,
	KindMalformedRequest,
	KindDuplicateEmail,
	KindDuplicateUsername,
	KindInvalidCredentials,
	KindNotFound,
	KindUnauthenticated,
	KindStoreFailure,
}

// Error carries a Kind plus the operation that produced it. Fields holds
// per-field validation problems keyed by JSON field name.
type Error struct {
	Kind   Kind
	Op     string
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	if e.Op == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNotFound) works
// for wrapped instances too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrMalformedRequest   = &Error{Kind: KindMalformedRequest}
	ErrDuplicateEmail     = &Error{Kind: KindDuplicateEmail}
	ErrDuplicateUsername  = &Error{Kind: KindDuplicateUsername}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated}
)

func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Store wraps an unexpected persistence error.
func Store(op string, err error) *Error {
	return Wrap(KindStoreFailure, op, err)
}

func Validation(op string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Op: op, Fields: fields}
}

// KindOf reports the Kind of err, treating anything unclassified as a store failure.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStoreFailure
}

// FieldsOf returns validation details attached to err, if any.
func FieldsOf(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
