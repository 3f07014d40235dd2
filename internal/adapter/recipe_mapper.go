// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// flexString accepts a JSON string, number or bool. null, objects and
// arrays decode to "".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*s = ""
		return nil
	}

	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
	case 't', 'f':
		*s = flexString(b)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		// numbers render in plain decimal form: 1e3 becomes "1000"
		v, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			*s = flexString(b)
			return nil
		}
		*s = flexString(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		*s = ""
	}
	return nil
}

// flexNumber accepts a JSON number or a numeric string; true and false
// decode to 1 and 0. Anything else decodes to 0.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "true":
		*n = 1
		return nil
	case "false":
		*n = 0
		return nil
	}

	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		*n = 0
		return nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = 0
		return nil
	}
	*n = flexNumber(v)
	return nil
}

// flexStrings accepts a JSON array whose elements are stringified. A
// non-array value decodes to an empty list.
type flexStrings []string

func (l *flexStrings) UnmarshalJSON(b []byte) error {
	var items []flexString
	if err := json.Unmarshal(b, &items); err != nil {
		*l = flexStrings{}
		return nil
	}

	out := make(flexStrings, 0, len(items))
	for _, it := range items {
		out = append(out, string(it))
	}
	*l = out
	return nil
}

// rawRecipe is a recipe record as sent by any backend version.
type rawRecipe struct {
	MongoID      *flexString `json:"_id"`
	ID           *flexString `json:"id"`
	Name         flexString  `json:"name"`
	Description  flexString  `json:"description"`
	Image        flexString  `json:"image"`
	CookTime     flexNumber  `json:"cookTime"`
	Servings     flexNumber  `json:"servings"`
	Difficulty   flexString  `json:"difficulty"`
	Category     flexString  `json:"category"`
	Restrictions flexStrings `json:"restrictions"`
	Ingredients  flexStrings `json:"ingredients"`
	Instructions flexStrings `json:"instructions"`
}

// decodeRecipe parses one record. A body that is not a JSON object is an
// error.
func decodeRecipe(body []byte, baseURL string) (models.Recipe, error) {
	var raw rawRecipe
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Recipe{}, err
	}
	return mapRecipe(raw, baseURL), nil
}

// decodeRecipeList parses a list response. Anything but a JSON array
// yields an empty list; elements that are not objects are skipped.
func decodeRecipeList(body []byte, baseURL string) []models.Recipe {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return []models.Recipe{}
	}

	recipes := make([]models.Recipe, 0, len(items))
	for _, item := range items {
		r, err := decodeRecipe(item, baseURL)
		if err != nil {
			continue
		}
		recipes = append(recipes, r)
	}
	return recipes
}

// mapRecipe converts a raw record into the canonical shape:
//   - id from "_id", else "id", always a string;
//   - numbers default to 0;
//   - difficulty and restriction tags lower-cased;
//   - list fields never nil;
//   - image absolutized against baseURL.
//
// Applying it to its own output (re-encoded as JSON) is a no-op.
func mapRecipe(raw rawRecipe, baseURL string) models.Recipe {
	var id string
	switch {
	case raw.MongoID != nil:
		id = string(*raw.MongoID)
	case raw.ID != nil:
		id = string(*raw.ID)
	}

	restrictions := make([]string, 0, len(raw.Restrictions))
	for _, tag := range raw.Restrictions {
		restrictions = append(restrictions, strings.ToLower(tag))
	}

	return models.Recipe{
		ID:           id,
		Name:         string(raw.Name),
		Description:  string(raw.Description),
		Image:        absolutizeImage(string(raw.Image), baseURL),
		CookTime:     float64(raw.CookTime),
		Servings:     float64(raw.Servings),
		Difficulty:   strings.ToLower(string(raw.Difficulty)),
		Category:     string(raw.Category),
		Restrictions: restrictions,
		Ingredients:  nonNil(raw.Ingredients),
		Instructions: nonNil(raw.Instructions),
	}
}

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

// absolutizeImage resolves "/path" against baseURL. Absolute http(s) URLs
// and anything else (bundled asset names) pass through.
func absolutizeImage(image, baseURL string) string {
	switch {
	case image == "":
		return ""
	case absoluteURL.MatchString(image):
		return image
	case strings.HasPrefix(image, "/"):
		return baseURL + image
	default:
		return image
	}
}

func nonNil(l flexStrings) []string {
	out := make([]string, 0, len(l))
	return append(out, l...)
}
