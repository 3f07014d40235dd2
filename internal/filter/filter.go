// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package filter narrows a recipe list by a free-text query and the
// selections of the filter panel.
//
// [Apply] is a pure function: it never mutates its input and always keeps
// the input order. [View] wraps it with memoization for the browse screen.
package filter

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// Apply returns the recipes matching query and state, in input order.
//
// Dimensions are combined with AND. Within time, difficulty and type any
// selected value may match; within restrictions every selected tag must be
// present. A dimension with no selection does not constrain the result.
func Apply(recipes []models.Recipe, query string, state models.FilterState) []models.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !matchesText(r, q) ||
			!matchesTime(r, state.Time) ||
			!matchesDifficulty(r, state.Difficulty) ||
			!matchesType(r, state.Type) ||
			!matchesRestrictions(r, state.Restrictions) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesText expects q already trimmed and lower-cased.
func matchesText(r models.Recipe, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	return slices.ContainsFunc(r.Ingredients, func(ingredient string) bool {
		return strings.Contains(strings.ToLower(ingredient), q)
	})
}

func matchesTime(r models.Recipe, buckets []string) bool {
	if len(buckets) == 0 {
		return true
	}
	return slices.ContainsFunc(buckets, func(bucket string) bool {
		return InTimeBucket(r.CookTime, bucket)
	})
}

// InTimeBucket reports whether minutes falls into the named bucket. Unknown
// bucket keys match nothing.
func InTimeBucket(minutes float64, bucket string) bool {
	switch bucket {
	case models.TimeBucket15to30:
		return minutes >= 15 && minutes <= 30
	case models.TimeBucket30to45:
		return minutes > 30 && minutes <= 45
	case models.TimeBucket45to60:
		return minutes > 45 && minutes <= 60
	case models.TimeBucketOver60:
		return minutes > 60
	default:
		return false
	}
}

func matchesDifficulty(r models.Recipe, difficulties []string) bool {
	if len(difficulties) == 0 {
		return true
	}
	difficulty := strings.ToLower(r.Difficulty)
	return slices.ContainsFunc(difficulties, func(d string) bool {
		return strings.ToLower(d) == difficulty
	})
}

func matchesType(r models.Recipe, types []string) bool {
	if len(types) == 0 {
		return true
	}
	return slices.Contains(types, r.Category)
}

func matchesRestrictions(r models.Recipe, tags []string) bool {
	for _, tag := range tags {
		if !r.HasRestriction(tag) {
			return false
		}
	}
	return true
}
