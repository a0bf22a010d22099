// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/app"
	"github.com/MKhiriev/insighted-client/internal/validators"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: KindNone},
		{name: "scope", err: ErrScopeNotSelected, want: KindValidationRejected},
		{name: "form", err: fmt.Errorf("email: %w", validators.ErrInvalidEmail), want: KindValidationRejected},
		{name: "missing session", err: ErrSessionMissing, want: KindAuthInvalid},
		{name: "401", err: adapter.NewResponseError(http.StatusUnauthorized, ""), want: KindAuthInvalid},
		{name: "404", err: adapter.NewResponseError(http.StatusNotFound, "gone"), want: KindRejected},
		{name: "418", err: adapter.NewResponseError(http.StatusTeapot, ""), want: KindRejected},
		{name: "canceled", err: fmt.Errorf("fetch: %w", context.Canceled), want: KindCanceled},
		{name: "transport", err: errDial, want: KindNetworkFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestMapAdapterError(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	respErr := adapter.NewResponseError(http.StatusBadRequest, "Missing fields")
	assert.Same(t, respErr, mapAdapterError(respErr))

	assert.ErrorIs(t, mapAdapterError(context.Canceled), context.Canceled)
	assert.NotErrorIs(t, mapAdapterError(context.Canceled), ErrNetworkFailure)

	err := mapAdapterError(errDial)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.ErrorIs(t, err, errDial)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, app.MsgScopeNotSelected, UserMessage(ErrScopeNotSelected))
	assert.Equal(t, app.MsgNoFileSelected, UserMessage(ErrNoFileSelected))
	assert.Equal(t, app.MsgAccessDenied, UserMessage(ErrRoleMismatch))
	assert.Equal(t, app.MsgSessionExpired, UserMessage(ErrSessionMissing))
	assert.Equal(t, app.MsgServerUnavailable, UserMessage(mapAdapterError(errDial)))
	assert.Equal(t, "Missing fields", UserMessage(adapter.NewResponseError(http.StatusBadRequest, "Missing fields")))
	assert.Equal(t, app.MsgUnexpectedError, UserMessage(adapter.NewResponseError(http.StatusInternalServerError, "")))
	assert.Equal(t, "", UserMessage(context.Canceled))
	assert.Equal(t, "email: invalid email address", UserMessage(fmt.Errorf("email: %w", validators.ErrInvalidEmail)))
	assert.Equal(t, app.MsgServerUnavailable, UserMessage(errors.New("eof")))
}

func TestUserMessage_StripsValidationPrefix(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrValidationRejected, fmt.Errorf("name: %w", validators.ErrRequiredField))

	assert.Equal(t, "name: field is required", UserMessage(err))
}
