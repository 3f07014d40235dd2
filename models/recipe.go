// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Recipe is the canonical recipe entity shown by the client. Values are
// produced by the adapter's normalization step, so every field already
// carries its declared default when the backend omitted it.
type Recipe struct {
	// ID is the stable identity key. The backend may send it as "_id" or
	// "id", string or number; it is always kept as a string.
	ID string `json:"id"`

	// Name is the display name. It is matched by the text search.
	Name string `json:"name"`

	// Description is free text shown on the detail screen.
	Description string `json:"description"`

	// Image is an absolute URL or a bundled asset path.
	Image string `json:"image"`

	// CookTime is the cooking time in minutes.
	CookTime float64 `json:"cookTime"`

	// Servings is the number of portions.
	Servings float64 `json:"servings"`

	// Difficulty is lower-cased (e.g. "fácil", "intermedio", "difícil").
	Difficulty string `json:"difficulty"`

	// Category is used by the "type" filter (e.g. "Desayuno", "Cena").
	Category string `json:"category"`

	// Restrictions holds lower-cased dietary tags.
	Restrictions []string `json:"restrictions"`

	// Ingredients is the ordered ingredient list.
	Ingredients []string `json:"ingredients"`

	// Instructions is the ordered list of steps.
	Instructions []string `json:"instructions"`
}

// HasRestriction reports whether tag (compared lower-cased) is one of the
// recipe's dietary tags.
func (r Recipe) HasRestriction(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range r.Restrictions {
		if t == tag {
			return true
		}
	}
	return false
}

// RecipeInput is the payload sent by administrators to create or update a
// recipe.
type RecipeInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	CookTime     float64  `json:"cookTime"`
	Servings     float64  `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Restrictions []string `json:"restrictions"`
}

// NewRecipeInput builds an edit payload pre-filled from an existing recipe.
func NewRecipeInput(r Recipe) RecipeInput {
	return RecipeInput{
		Name:         r.Name,
		Description:  r.Description,
		Image:        r.Image,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Difficulty:   r.Difficulty,
		Category:     r.Category,
		Ingredients:  append([]string(nil), r.Ingredients...),
		Instructions: append([]string(nil), r.Instructions...),
		Restrictions: append([]string(nil), r.Restrictions...),
	}
}

// Difficulties accepted by the admin form.
var Difficulties = []string{"Fácil", "Intermedio", "Difícil"}
