// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/app"
	"github.com/MKhiriev/insighted-client/internal/validators"
)

// ErrorKind is the view-level category of an error.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindAuthInvalid
	KindNetworkFailure
	KindValidationRejected
	// KindRejected is any other non-2xx backend answer.
	KindRejected
	// KindCanceled is a request abandoned because it was superseded.
	KindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAuthInvalid:
		return "auth_invalid"
	case KindNetworkFailure:
		return "network_failure"
	case KindValidationRejected:
		return "validation_rejected"
	case KindRejected:
		return "rejected"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Classify maps err into the taxonomy.
func Classify(err error) ErrorKind {
	var respErr *adapter.ResponseError

	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, ErrValidationRejected), isValidationError(err):
		return KindValidationRejected
	case errors.Is(err, ErrAuthInvalid), errors.Is(err, adapter.ErrUnauthorized):
		return KindAuthInvalid
	case errors.As(err, &respErr):
		return KindRejected
	default:
		return KindNetworkFailure
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, validators.ErrRequiredField) ||
		errors.Is(err, validators.ErrInvalidEmail) ||
		errors.Is(err, validators.ErrValueTooShort) ||
		errors.Is(err, validators.ErrInvalidValue)
}

// mapAdapterError tags transport failures with ErrNetworkFailure. Backend
// answers and cancellations pass through unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) || errors.Is(err, context.Canceled) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
}

// UserMessage renders err for the status line.
func UserMessage(err error) string {
	var respErr *adapter.ResponseError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrScopeNotSelected):
		return app.MsgScopeNotSelected
	case errors.Is(err, ErrNoFileSelected):
		return app.MsgNoFileSelected
	case errors.Is(err, ErrRoleMismatch):
		return app.MsgAccessDenied
	}

	switch Classify(err) {
	case KindAuthInvalid:
		if errors.As(err, &respErr) && respErr.Message == app.MsgInvalidCredentials {
			return app.MsgInvalidCredentials
		}
		return app.MsgSessionExpired
	case KindNetworkFailure:
		return app.MsgServerUnavailable
	case KindValidationRejected:
		return strings.TrimPrefix(err.Error(), ErrValidationRejected.Error()+": ")
	case KindRejected:
		errors.As(err, &respErr)
		if respErr.Message != "" {
			return respErr.Message
		}
		return app.MsgUnexpectedError
	case KindCanceled:
		return ""
	default:
		return app.MsgUnexpectedError
	}
}
