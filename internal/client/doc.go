// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the persisted session, runs the auth flow when there is none,
// opens the role dashboard and returns to the auth flow after a logout or an
// expired session. Background workers run for the whole process lifetime.
package client
