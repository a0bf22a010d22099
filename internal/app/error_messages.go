// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// InsightEd client services and screens.
//
// All Msg* constants are human-readable strings shown to the user in the
// status line, or matched against messages returned by the backend. Keeping
// them in one place ensures consistent wording throughout the client.
package app

const (
	// MsgInvalidCredentials is the backend's 401 message for a failed login.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgEmailAlreadyRegistered is shown when POST /register answers 409.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgSessionExpired is shown when an authenticated call answers 401 and
	// the local session has been cleared.
	MsgSessionExpired = "Your session has expired. Please log in again."

	// MsgAccessDenied is shown when the saved profile lacks the role a
	// dashboard requires.
	MsgAccessDenied = "You do not have access to this dashboard."

	// MsgServerUnavailable is shown when a request could not reach the
	// backend at all.
	MsgServerUnavailable = "Server unavailable. Check your connection and try again."

	// MsgScopeNotSelected is shown when a roster mutation is attempted while
	// the subject is "All" or no academic year is set.
	MsgScopeNotSelected = "Select a subject and academic year first."

	// MsgStudentDeleted confirms a roster delete.
	MsgStudentDeleted = "Student removed from this subject."

	// MsgStudentUpdated confirms a roster edit.
	MsgStudentUpdated = "Student details updated."

	// MsgNoFileSelected is shown when an upload is started without a path.
	MsgNoFileSelected = "Please select a file to upload."

	// MsgUnexpectedError is the fallback for errors with no better wording.
	MsgUnexpectedError = "Something went wrong. Please try again."
)
