// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Valid(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Valid())
	assert.False(t, (&Session{Token: "t"}).Valid())
	assert.False(t, (&Session{User: &User{ID: "1"}}).Valid())
	assert.True(t, (&Session{User: &User{ID: "1"}, Token: "t"}).Valid())
}

func TestSession_Role(t *testing.T) {
	var nilSession *Session
	assert.Equal(t, RoleGuest, nilSession.Role())
	assert.Equal(t, RoleAdmin, (&Session{User: &User{Role: RoleAdmin}, Token: "t"}).Role())
}

func TestSession_WithRoleCopies(t *testing.T) {
	s := &Session{User: &User{ID: "1", Role: RoleUser}, Token: "t"}

	admin := s.WithRole(RoleAdmin)

	assert.Equal(t, RoleUser, s.User.Role)
	assert.Equal(t, RoleAdmin, admin.User.Role)
	assert.Equal(t, s.Token, admin.Token)
}

func TestSession_IdentityChangesWithToken(t *testing.T) {
	a := &Session{User: &User{ID: "1"}, Token: "t1"}
	b := &Session{User: &User{ID: "1"}, Token: "t2"}
	var none *Session

	assert.NotEqual(t, a.Identity(), b.Identity())
	assert.Empty(t, none.Identity())
}

func TestSession_TokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	got, ok := (&Session{Token: signed}).TokenExpiry()
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = (&Session{Token: "opaque-token"}).TokenExpiry()
	assert.False(t, ok)
}

func TestAuthResult_Session(t *testing.T) {
	res := AuthResult{User: User{ID: "7", Role: RoleUser}, Token: "tok"}

	s := res.Session()

	require.True(t, s.Valid())
	assert.Equal(t, "7", s.UserID())
	assert.Equal(t, "tok", s.BearerToken())
}
