// Package apperr defines the error taxonomy shared by the service and
// handler layers. An *Error serializes directly as the JSON error body
// returned to clients.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP status mapping.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindSchema      Kind = "schema"
	KindPersistence Kind = "persistence"
)

// Error is the structured error returned to clients as {kind, message}.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`

	err error
}

// Error makes *Error satisfy the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindPersistence:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports a bad or missing field. The field name is part of
// the client-visible message.
func Validation(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("%s: %s", field, message),
	}
}

// NotFound reports that no record matched the given id.
func NotFound(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}

// Schema reports an unknown entity or association alias.
func Schema(message string) *Error {
	return &Error{
		Kind:    KindSchema,
		Message: message,
	}
}

// Persistence wraps a datastore failure.
func Persistence(err error) *Error {
	return &Error{
		Kind:    KindPersistence,
		Message: "datastore operation failed",
		err:     err,
	}
}

// From returns err as an *Error, wrapping unclassified errors as
// persistence failures so every error reaching a handler has a kind.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Persistence(err)
}
