// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, type-safe keys, request ids
// and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store a request correlation id in the
// context. All backend requests issued under such a context share the id,
// which ties the per-student summary calls of one roster load together in
// the logs.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the correlation id from the context.
//
// Returns the id and an ok flag:
//   - ok == true: a non-empty string id is present
//   - ok == false: value is missing, empty or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
