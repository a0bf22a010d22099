package service

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to the views. Every error returned by a service
// matches at most one of these with errors.Is; see [Classify].
var (
	// ErrAuthInvalid: the token is missing, expired or carries the wrong
	// role. The local session has been cleared when the backend said so.
	ErrAuthInvalid = errors.New("session is not valid")

	// ErrNetworkFailure: the request never produced an HTTP response.
	ErrNetworkFailure = errors.New("network failure")

	// ErrValidationRejected: a local precondition failed and nothing was
	// sent.
	ErrValidationRejected = errors.New("validation rejected")
)

var (
	ErrSessionMissing   = fmt.Errorf("%w: no saved session", ErrAuthInvalid)
	ErrRoleMismatch     = fmt.Errorf("%w: role mismatch", ErrAuthInvalid)
	ErrScopeNotSelected = fmt.Errorf("%w: no subject and academic year selected", ErrValidationRejected)
	ErrNoFileSelected   = fmt.Errorf("%w: no file selected", ErrValidationRejected)
)
