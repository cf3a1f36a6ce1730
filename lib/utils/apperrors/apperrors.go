// Package apperrors classifies the errors the workflow engines surface so the
// API layer can map them to meaningful responses instead of a generic 500.
package apperrors

import (
	"github.com/pkg/errors"
)

type Kind string

const (
	// KindUnauthorized — the actor lacks the role/ownership/membership the
	// operation requires. Always rejected before any mutation.
	KindUnauthorized Kind = "UNAUTHORIZED"
	// KindNotFound — the referenced record does not exist.
	KindNotFound Kind = "NOT_FOUND"
	// KindStateConflict — precondition failure: acting on an already handled
	// item or double-advancing a process. No mutation occurs.
	KindStateConflict Kind = "STATE_CONFLICT"
	// KindConfiguration — data-setup problem (missing template, no validators
	// configured, employee without systems). Surfaced with actionable text.
	KindConfiguration Kind = "CONFIGURATION"
	// KindValidation — malformed or inconsistent input.
	KindValidation Kind = "VALIDATION"
)

type Error struct {
	ErrKind Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) error {
	return &Error{ErrKind: kind, Message: message}
}

func Unauthorized(message string) error {
	return New(KindUnauthorized, message)
}

func NotFound(message string) error {
	return New(KindNotFound, message)
}

func StateConflict(message string) error {
	return New(KindStateConflict, message)
}

func Configuration(message string) error {
	return New(KindConfiguration, message)
}

func Validation(message string) error {
	return New(KindValidation, message)
}

// KindOf extracts the kind from an error chain; "" when it is not an
// application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.ErrKind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
