// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the credential pair persisted on the client: an opaque bearer
// token and the serialized user profile. Either half may be missing when read
// back from storage; [Session.Complete] tells whether both are present.
type Session struct {
	// Token is the opaque bearer token. The client never inspects it.
	Token string

	// User is nil when the profile entry is absent or cannot be decoded.
	User *User
}

// Complete reports whether both persisted entries are present.
func (s Session) Complete() bool {
	return s.Token != "" && s.User != nil
}

// HasRole reports whether the session profile carries role.
func (s Session) HasRole(role Role) bool {
	return s.User != nil && s.User.Role == role
}
