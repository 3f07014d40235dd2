// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated user and bearer token pair held by the
// client. It is replaced wholesale on every change and never mutated in
// place once published.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Valid reports whether both the user and the token are present. Only
// well-formed sessions are restored at startup.
func (s *Session) Valid() bool {
	return s != nil && s.User != nil && s.Token != ""
}

// UserID returns the ID of the session user or an empty string.
func (s *Session) UserID() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.ID
}

// BearerToken returns the session token or an empty string for a nil
// session.
func (s *Session) BearerToken() string {
	if s == nil {
		return ""
	}
	return s.Token
}

// Role returns the effective role: the user's role, or [RoleGuest] when the
// session is absent.
func (s *Session) Role() Role {
	if s == nil || s.User == nil || s.User.Role == "" {
		return RoleGuest
	}
	return s.User.Role
}

// WithRole returns a copy of the session whose user carries role.
func (s *Session) WithRole(role Role) *Session {
	if s == nil || s.User == nil {
		return s
	}
	u := *s.User
	u.Role = role
	return &Session{User: &u, Token: s.Token}
}

// Identity is the key that drives favorites reconciliation: it changes on
// login, logout and token refresh.
func (s *Session) Identity() string {
	if !s.Valid() {
		return ""
	}
	return s.User.ID + "\x00" + s.Token
}

// TokenExpiry returns the "exp" claim of the token when the token is a JWT.
// The signature is not verified: the value is informational only and never
// used to invalidate a session.
func (s *Session) TokenExpiry() (time.Time, bool) {
	if s == nil || s.Token == "" {
		return time.Time{}, false
	}

	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// SessionState is the lifecycle stage of the client session owner:
// Uninitialized, then Loading, then Authenticated or Anonymous.
type SessionState int

const (
	SessionUninitialized SessionState = iota
	SessionLoading
	SessionAuthenticated
	SessionAnonymous
)

func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionAuthenticated:
		return "authenticated"
	case SessionAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}
