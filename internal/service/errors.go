// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbiddenRole    = errors.New("admin role required")
	ErrNotCommentOwner  = errors.New("comment belongs to another user")

	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError is a client-side input failure detected before any
// network call.
type ValidationError struct {
	// Field is the first invalid field.
	Field string
	// Message is the user-facing text.
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ReconciliationError is a failed read of authoritative state (favorites,
// comments). Screens render an empty result plus an inline message.
type ReconciliationError struct {
	// Op names what was being fetched.
	Op  string
	Err error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconcile %s: %v", e.Op, e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

var validationMessages = map[error]string{
	validators.ErrEmptyName:         app.MsgNameRequired,
	validators.ErrEmptyDescription:  app.MsgDescriptionRequired,
	validators.ErrInvalidCookTime:   app.MsgInvalidCookTime,
	validators.ErrInvalidServings:   app.MsgInvalidServings,
	validators.ErrInvalidDifficulty: app.MsgInvalidDifficulty,
	validators.ErrNoIngredients:     app.MsgIngredientRequired,
	validators.ErrNoInstructions:    app.MsgInstructionRequired,
	validators.ErrEmptyEmail:        app.MsgFillAllFields,
	validators.ErrEmptyPassword:     app.MsgFillAllFields,
	validators.ErrEmptyUsername:     app.MsgFillAllFields,
	validators.ErrEmptyContent:      app.MsgCommentRequired,
}

// newValidationError converts a validator failure into a
// [*ValidationError]. Anything that is not a field failure is returned
// unchanged.
func newValidationError(err error) error {
	var fe *validators.FieldError
	if !errors.As(err, &fe) {
		return err
	}

	msg, ok := validationMessages[fe.Err]
	if !ok {
		msg = fe.Err.Error()
	}
	return &ValidationError{Field: fe.Field, Message: msg, Err: err}
}
