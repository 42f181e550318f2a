// Package apperr defines the error kinds shared by every service so that
// handlers can map failures to transport outcomes without string matching.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindTargetNotFound    Kind = "TARGET_NOT_FOUND"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindAssetUploadFailed Kind = "ASSET_UPLOAD_FAILED"
	KindPersistenceFailed Kind = "PERSISTENCE_FAILED"
	KindConflict          Kind = "CONFLICT"
	KindValidation        Kind = "VALIDATION_ERROR"
	KindUnauthorized      Kind = "UNAUTHORIZED"
	KindForbidden         Kind = "FORBIDDEN"
	KindInternal          Kind = "INTERNAL_ERROR"
)

// Error pairs a stable kind with a human-readable message. The original
// cause is kept for logging but never shown to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to a lower-level store/provider error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind carried by err, or KindInternal for errors that
// escaped the taxonomy.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the user-facing message for err.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}

// HTTPStatus maps an error kind onto its transport outcome.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound, KindTargetNotFound:
		return http.StatusNotFound
	case KindInvalidTransition, KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
