// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the backend.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldError: the first failed field together with its sentinel error.
//
// The recipe client validates recipe forms, credentials and comments with
// [NewRecipeValidator]; failures never issue a network request.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields. Fields are checked in the given
// order and the first failure is returned.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
