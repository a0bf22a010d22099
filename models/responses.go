// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic `{"message": ...}` / `{"error": ...}` body
// the backend returns from mutations and on failures.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns whichever of the two fields is set, preferring Error.
func (m MessageResponse) Text() string {
	if m.Error != "" {
		return m.Error
	}
	return m.Message
}
