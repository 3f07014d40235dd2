// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the authorization level of the current user.
type Role string

const (
	// RoleAdmin may create, update and delete recipes.
	RoleAdmin Role = "admin"
	// RoleUser is a regular authenticated user.
	RoleUser Role = "user"
	// RoleGuest is the effective role when nobody is signed in. It is never
	// stored in a session.
	RoleGuest Role = "guest"
)

// User represents the authenticated account held in the client session.
type User struct {
	// ID is the backend identifier, always kept as a string.
	ID string `json:"id"`

	// Email is the login e-mail.
	Email string `json:"email"`

	// Username is the public display name.
	Username string `json:"username"`

	// Role is derived from the backend "is_admin" flag at login time.
	Role Role `json:"role"`

	// AvatarURL is optional.
	AvatarURL *string `json:"avatarUrl"`
}

// IsAdmin reports whether the user may manage recipes.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RoleFromAdminFlag converts the backend "is_admin" flag into a [Role].
func RoleFromAdminFlag(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}
