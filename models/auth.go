// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register. Birthday and
// Gender are optional and sent as JSON null when absent.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Username string  `json:"username"`
	Birthday *string `json:"birthday"`
	Gender   *string `json:"gender"`
}

// AuthResult is the adapter-level result of a successful login or
// registration, before it becomes a [Session].
type AuthResult struct {
	User  User
	Token string
}

// Session converts the result into a new session value.
func (a AuthResult) Session() *Session {
	u := a.User
	return &Session{User: &u, Token: a.Token}
}
