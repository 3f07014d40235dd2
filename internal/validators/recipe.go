// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// Field name constants used to scope validation.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldCookTime     = "cookTime"
	FieldServings     = "servings"
	FieldDifficulty   = "difficulty"
	FieldIngredients  = "ingredients"
	FieldInstructions = "instructions"

	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUsername = "username"

	FieldContent = "content"
	FieldUserID  = "userId"
)

// RecipeValidator validates the recipe form, the login and register forms
// and new comments. Both value and pointer forms are accepted.
type RecipeValidator struct{}

func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RecipeInput:
		return v.validateRecipeInput(value, fields...)
	case *models.RecipeInput:
		return v.validateRecipeInput(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.NewComment:
		return v.validateComment(value, fields...)
	case *models.NewComment:
		return v.validateComment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isKnownDifficulty(d string) bool {
	for _, known := range models.Difficulties {
		if strings.EqualFold(d, known) {
			return true
		}
	}
	return false
}

func (v *RecipeValidator) validateRecipeInput(in models.RecipeInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldCookTime, FieldServings, FieldDifficulty, FieldIngredients, FieldInstructions}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(in.Name) {
				return fieldError(f, ErrEmptyName)
			}
		case FieldDescription:
			if isBlank(in.Description) {
				return fieldError(f, ErrEmptyDescription)
			}
		case FieldCookTime:
			if math.IsNaN(in.CookTime) || math.IsInf(in.CookTime, 0) || in.CookTime < 0 {
				return fieldError(f, ErrInvalidCookTime)
			}
		case FieldServings:
			if math.IsNaN(in.Servings) || math.IsInf(in.Servings, 0) || in.Servings <= 0 {
				return fieldError(f, ErrInvalidServings)
			}
		case FieldDifficulty:
			if !isKnownDifficulty(in.Difficulty) {
				return fieldError(f, ErrInvalidDifficulty)
			}
		case FieldIngredients:
			if len(in.Ingredients) == 0 {
				return fieldError(f, ErrNoIngredients)
			}
		case FieldInstructions:
			if len(in.Instructions) == 0 {
				return fieldError(f, ErrNoInstructions)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecipeValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(req.Email) {
				return fieldError(f, ErrEmptyEmail)
			}
		case FieldPassword:
			// passwords are not trimmed
			if req.Password == "" {
				return fieldError(f, ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecipeValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(req.Email) {
				return fieldError(f, ErrEmptyEmail)
			}
		case FieldPassword:
			if req.Password == "" {
				return fieldError(f, ErrEmptyPassword)
			}
		case FieldUsername:
			if isBlank(req.Username) {
				return fieldError(f, ErrEmptyUsername)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecipeValidator) validateComment(c models.NewComment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if isBlank(c.Content) {
				return fieldError(f, ErrEmptyContent)
			}
		case FieldUserID:
			if c.UserID == "" {
				return fieldError(f, ErrEmptyUserID)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
