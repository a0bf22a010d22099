// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/app"
	"github.com/MKhiriev/insighted-client/internal/service"
)

// errorText renders err for the status line of a dashboard.
func errorText(err error) string {
	return service.UserMessage(err)
}

// loginErrorText renders a failed login. A 401 from POST /login is a wrong
// password, not an expired session.
func loginErrorText(err error) string {
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && errors.Is(err, adapter.ErrUnauthorized) {
		if respErr.Message != "" {
			return respErr.Message
		}
		return app.MsgInvalidCredentials
	}
	return service.UserMessage(err)
}

// sessionLost reports whether err means the session was cleared and the user
// must log in again.
func sessionLost(err error) bool {
	return service.Classify(err) == service.KindAuthInvalid
}
