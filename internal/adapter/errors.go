// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors matched by [*RequestError] through errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ErrUnexpectedResponse is returned when a 2xx response body does not have
// the expected shape.
var ErrUnexpectedResponse = errors.New("unexpected response")

// RequestError is a non-2xx HTTP response. Body is best effort and empty
// when it could not be read.
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP %d %s - %s", e.StatusCode, e.Status, e.Body)
}

// Is maps the status code onto the package sentinels.
func (e *RequestError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return target == ErrBadRequest
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusConflict:
		return target == ErrConflict
	case http.StatusInternalServerError:
		return target == ErrInternalServerError
	case http.StatusBadGateway:
		return target == ErrBadGateway
	default:
		return false
	}
}
