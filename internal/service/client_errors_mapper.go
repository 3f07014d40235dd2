// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/app"
)

// UserMessage renders err as text for the user. It returns an empty string
// for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return app.MsgLoginRequired
	case errors.Is(err, ErrForbiddenRole):
		return app.MsgAdminOnly
	case errors.Is(err, ErrNotCommentOwner):
		return app.MsgNotCommentOwner
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	}

	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) {
		return requestErrorMessage(reqErr)
	}

	if IsServerUnavailable(err) {
		return app.MsgServerUnavailable
	}

	return err.Error()
}

func requestErrorMessage(err *adapter.RequestError) string {
	body := strings.TrimSpace(err.Body)

	switch {
	case strings.Contains(body, "users_email_key"):
		return app.MsgEmailTaken
	case err.StatusCode == http.StatusUnauthorized:
		return app.MsgSessionExpired
	case err.StatusCode == http.StatusNotFound:
		return app.MsgRecipeNotFound
	case err.StatusCode == http.StatusForbidden:
		return app.MsgAdminOnly
	case err.StatusCode >= http.StatusInternalServerError && body == "":
		return app.MsgServerUnavailable
	}

	return err.Error()
}

// IsServerUnavailable reports whether err is a transport failure: the
// backend was never reached or never answered.
func IsServerUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	// resty sometimes flattens the chain
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
