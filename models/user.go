// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the access role assigned to an account by the backend.
type Role string

const (
	// RoleTeacher gates the teacher dashboard (rosters, insights, clusters).
	RoleTeacher Role = "teacher"

	// RoleAdmin gates the admin dashboard (profiles, teachers, uploads).
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the roles the client knows how to render.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// User is the persisted user profile returned by /login and /me.
// The backend issues numeric identifiers.
type User struct {
	// ID is the backend account identifier.
	ID int64 `json:"id"`

	// Name is the display name shown in dashboard headers.
	Name string `json:"name"`

	// Email is present on /admin/users rows and on registration;
	// /login does not return it.
	Email string `json:"email,omitempty"`

	// Role selects which dashboard the user may open.
	Role Role `json:"role"`
}

// Credentials is the POST /login body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the POST /register body.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse is the successful POST /login payload.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
