// Package apierror carries typed errors from the services to the HTTP layer
// and defines the response envelope. All errors returned to clients go through
// this package so internal details (stack traces, DB errors) never leak out.
package apierror

import (
	"errors"
	"net/http"
)

// Error is the error services return. Status picks the HTTP code, Message is
// safe to show to clients, Err keeps the internal cause for the logs.
type Error struct {
	Status  int
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

// Validation is a 400 for malformed or semantically invalid input.
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Conflict is a 400 for state conflicts (caixa already open, already closed).
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// NotFound is a 404 for a missing resource.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Internal is a 500. The original error is kept for logging but the client
// only ever sees the generic message.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Erro interno do servidor", Err: err}
}

// From coerces any error into an *Error. Errors the services did not classify
// are treated as internal.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK wraps a successful payload.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps a client-facing error message.
func Fail(msg string) Response {
	return Response{Success: false, Message: msg}
}
