// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("name is required")
	ErrEmptyDescription  = errors.New("description is required")
	ErrInvalidCookTime   = errors.New("cook time must be a finite non-negative number")
	ErrInvalidServings   = errors.New("servings must be a positive number")
	ErrInvalidDifficulty = errors.New("unknown difficulty")
	ErrNoIngredients     = errors.New("at least one ingredient is required")
	ErrNoInstructions    = errors.New("at least one instruction is required")

	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyContent  = errors.New("comment content is required")
	ErrEmptyUserID   = errors.New("user ID is required")
)

// FieldError reports which field failed and why.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
