// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/insighted-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive surface the runtime drives.
type UI interface {
	// AuthFlow blocks until the user has logged in.
	AuthFlow(ctx context.Context) (models.Session, error)

	// Dashboard blocks while the role dashboard of session is open. logout
	// is true when the user must authenticate again.
	Dashboard(ctx context.Context, session models.Session) (logout bool, err error)
}

// SessionLoader restores the persisted session at startup.
type SessionLoader interface {
	Load(ctx context.Context) (models.Session, error)
}
