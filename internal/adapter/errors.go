package adapter

import (
	"errors"
	"strconv"
)

// Sentinel errors matched with errors.Is. Every [*ResponseError] unwraps to
// one of them, or to none for unexpected statuses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ResponseError is a non-2xx backend response.
type ResponseError struct {
	// StatusCode is the HTTP status.
	StatusCode int
	// Message is the backend's "error" (or "message") field, or the raw
	// body when it is not JSON.
	Message string

	kind error
}

func (e *ResponseError) Error() string {
	if e.kind == nil {
		return "http " + strconv.Itoa(e.StatusCode) + ": " + e.Message
	}
	if e.Message == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.Message
}

// Unwrap returns the sentinel the status maps to.
func (e *ResponseError) Unwrap() error {
	return e.kind
}
