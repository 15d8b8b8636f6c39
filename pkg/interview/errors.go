package interview

import (
	"errors"
	"fmt"
)

// Kind classifies engine failures so the transport layer can map them
// to status codes without string matching.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindInvalidState Kind = "INVALID_STATE"
	KindGeneration   Kind = "GENERATION"
	KindFeedback     Kind = "FEEDBACK"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func NewInvalidStateError(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidState, Msg: fmt.Sprintf(format, args...)}
}

// NewGenerationError marks a failed or unparseable question generation.
// The session is untouched and the call is safe to retry.
func NewGenerationError(msg string, cause error) error {
	return &Error{Kind: KindGeneration, Msg: msg, Err: cause}
}

// NewFeedbackError marks a failed or unparseable batch feedback call.
// No partial scores are written and the call is safe to retry.
func NewFeedbackError(msg string, cause error) error {
	return &Error{Kind: KindFeedback, Msg: msg, Err: cause}
}

// KindOf extracts the error kind, or an empty Kind for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
