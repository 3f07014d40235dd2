// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRecipeInput() models.RecipeInput {
	return models.RecipeInput{
		Name:         "Tarta",
		Description:  "Tarta de manzana",
		CookTime:     30,
		Servings:     4,
		Difficulty:   "Fácil",
		Category:     "Snack",
		Ingredients:  []string{"manzana"},
		Instructions: []string{"hornear"},
	}
}

func requireFieldError(t *testing.T, err error, field string, sentinel error) {
	t.Helper()

	var fe *FieldError
	require.True(t, errors.As(err, &fe), "expected *FieldError, got %v", err)
	assert.Equal(t, field, fe.Field)
	assert.ErrorIs(t, err, sentinel)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRecipeValidator()
	ctx := context.Background()

	in := validRecipeInput()
	assert.NoError(t, v.Validate(ctx, in))
	assert.NoError(t, v.Validate(ctx, &in))

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.c", Password: "p"}))
	assert.NoError(t, v.Validate(ctx, &models.RegisterRequest{Email: "a@b.c", Password: "p", Username: "ana"}))
	assert.NoError(t, v.Validate(ctx, models.NewComment{Content: "rica", UserID: "u1"}))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRecipeValidator()

	err := v.Validate(context.Background(), validRecipeInput(), "calories")

	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Recipe input
// ---------------------------------------------------------------------------

func TestValidate_RecipeInput(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *models.RecipeInput)
		field    string
		sentinel error
	}{
		{"blank name", func(in *models.RecipeInput) { in.Name = "   " }, FieldName, ErrEmptyName},
		{"blank description", func(in *models.RecipeInput) { in.Description = "" }, FieldDescription, ErrEmptyDescription},
		{"negative cook time", func(in *models.RecipeInput) { in.CookTime = -1 }, FieldCookTime, ErrInvalidCookTime},
		{"NaN cook time", func(in *models.RecipeInput) { in.CookTime = math.NaN() }, FieldCookTime, ErrInvalidCookTime},
		{"infinite cook time", func(in *models.RecipeInput) { in.CookTime = math.Inf(1) }, FieldCookTime, ErrInvalidCookTime},
		{"zero servings", func(in *models.RecipeInput) { in.Servings = 0 }, FieldServings, ErrInvalidServings},
		{"unknown difficulty", func(in *models.RecipeInput) { in.Difficulty = "Extrema" }, FieldDifficulty, ErrInvalidDifficulty},
		{"no ingredients", func(in *models.RecipeInput) { in.Ingredients = nil }, FieldIngredients, ErrNoIngredients},
		{"no instructions", func(in *models.RecipeInput) { in.Instructions = []string{} }, FieldInstructions, ErrNoInstructions},
	}

	v := NewRecipeValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRecipeInput()
			tt.mutate(&in)

			err := v.Validate(context.Background(), in)

			requireFieldError(t, err, tt.field, tt.sentinel)
		})
	}
}

func TestValidate_RecipeInput_ZeroCookTimeAllowed(t *testing.T) {
	in := validRecipeInput()
	in.CookTime = 0

	assert.NoError(t, NewRecipeValidator().Validate(context.Background(), in))
}

func TestValidate_RecipeInput_DifficultyCaseInsensitive(t *testing.T) {
	in := validRecipeInput()
	in.Difficulty = "difícil"

	assert.NoError(t, NewRecipeValidator().Validate(context.Background(), in))
}

func TestValidate_RecipeInput_FirstFailureWins(t *testing.T) {
	in := models.RecipeInput{}

	err := NewRecipeValidator().Validate(context.Background(), in)

	requireFieldError(t, err, FieldName, ErrEmptyName)
}

func TestValidate_RecipeInput_ScopedFields(t *testing.T) {
	in := models.RecipeInput{Name: "Sopa"}

	err := NewRecipeValidator().Validate(context.Background(), in, FieldName)

	assert.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Credentials / comments
// ---------------------------------------------------------------------------

func TestValidate_Login(t *testing.T) {
	v := NewRecipeValidator()
	ctx := context.Background()

	requireFieldError(t, v.Validate(ctx, models.LoginRequest{Password: "p"}), FieldEmail, ErrEmptyEmail)
	requireFieldError(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.c"}), FieldPassword, ErrEmptyPassword)

	// пароль из пробелов допустим
	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.c", Password: "  "}))
}

func TestValidate_Register(t *testing.T) {
	v := NewRecipeValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{Email: "a@b.c", Password: "p"})

	requireFieldError(t, err, FieldUsername, ErrEmptyUsername)
}

func TestValidate_Comment(t *testing.T) {
	v := NewRecipeValidator()
	ctx := context.Background()

	requireFieldError(t, v.Validate(ctx, models.NewComment{Content: " \n ", UserID: "u1"}), FieldContent, ErrEmptyContent)
	requireFieldError(t, v.Validate(ctx, models.NewComment{Content: "ok"}), FieldUserID, ErrEmptyUserID)
}
