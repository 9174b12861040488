// Package apierror provides the error envelope and the typed error hierarchy
// used by every handler. All errors returned to clients go through this
// package so that internal details (stack traces, SQL errors) never leak.
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// Kind classifies an error into the fixed set of HTTP-mappable categories.
type Kind int

const (
	KindValidation   Kind = iota // caller-fixable request problem → 400
	KindUnauthorized             // missing or wrong credentials → 401
	KindForbidden                // business rule forbids the operation → 403
	KindNotFound                 // unknown identifier → 404
	KindConflict                 // unique-key collision → 409
	KindInternal                 // store or infrastructure failure → 500
)

// Error is a typed service error. Msg is safe to show to the caller for every
// kind except KindInternal, whose Msg is replaced by a generic message at the
// HTTP boundary; the wrapped cause is only logged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }

func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }

func Forbidden(msg string) error { return &Error{Kind: KindForbidden, Msg: msg} }

func NotFound(msg string) error { return &Error{Kind: KindNotFound, Msg: msg} }

func Conflict(msg string) error { return &Error{Kind: KindConflict, Msg: msg} }

// Internal wraps an unexpected failure. The cause stays attached for logging.
func Internal(err error) error {
	return &Error{Kind: KindInternal, Msg: "Error interno del servidor", Err: err}
}

// Status maps an error to its HTTP status code. Untyped errors are treated as
// internal failures.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-safe message for err. Internal and untyped
// errors produce a generic message; their cause is for logs only.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		return "Error interno del servidor"
	}
	return e.Msg
}
