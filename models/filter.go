// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
)

// FilterDimension names one independent facet of the recipe query.
type FilterDimension string

const (
	DimensionTime         FilterDimension = "time"
	DimensionDifficulty   FilterDimension = "difficulty"
	DimensionType         FilterDimension = "type"
	DimensionRestrictions FilterDimension = "restrictions"
)

// Time bucket keys understood by the filter engine.
const (
	TimeBucket15to30 = "15-30"
	TimeBucket30to45 = "30-45"
	TimeBucket45to60 = "45-60"
	TimeBucketOver60 = "60+"
)

// FilterOption is a selectable chip of the filter panel.
type FilterOption struct {
	Key   string
	Label string
}

// FilterCatalog lists the options offered per dimension, in display order.
var FilterCatalog = map[FilterDimension][]FilterOption{
	DimensionTime: {
		{Key: TimeBucket15to30, Label: "15-30"},
		{Key: TimeBucket30to45, Label: "30-45"},
		{Key: TimeBucket45to60, Label: "45-60"},
		{Key: TimeBucketOver60, Label: "60+"},
	},
	DimensionDifficulty: {
		{Key: "fácil", Label: "Fácil"},
		{Key: "intermedio", Label: "Intermedio"},
		{Key: "difícil", Label: "Difícil"},
	},
	DimensionType: {
		{Key: "Desayuno", Label: "Desayuno"},
		{Key: "Almuerzo", Label: "Almuerzo"},
		{Key: "Cena", Label: "Cena"},
		{Key: "Snack", Label: "Snack"},
	},
	DimensionRestrictions: {
		{Key: "vegetariano", Label: "Vegetariano"},
		{Key: "sin lacteos", Label: "Sin lacteos"},
		{Key: "sin gluten", Label: "Sin gluten"},
	},
}

// FilterDimensions is the display order of the filter panel sections.
var FilterDimensions = []FilterDimension{
	DimensionTime,
	DimensionDifficulty,
	DimensionType,
	DimensionRestrictions,
}

// FilterState is the UI-supplied selection. Every dimension defaults to
// empty, which means "no constraint". Values are replaced, never mutated
// in place, so a state can be compared with [FilterState.Equal].
type FilterState struct {
	Time         []string `json:"time"`
	Difficulty   []string `json:"difficulty"`
	Type         []string `json:"type"`
	Restrictions []string `json:"restrictions"`
}

// IsEmpty reports whether no dimension constrains the result.
func (f FilterState) IsEmpty() bool {
	return len(f.Time) == 0 && len(f.Difficulty) == 0 && len(f.Type) == 0 && len(f.Restrictions) == 0
}

// Equal reports whether both states select the same values in the same
// order.
func (f FilterState) Equal(other FilterState) bool {
	return slices.Equal(f.Time, other.Time) &&
		slices.Equal(f.Difficulty, other.Difficulty) &&
		slices.Equal(f.Type, other.Type) &&
		slices.Equal(f.Restrictions, other.Restrictions)
}

// Values returns the selection of dim.
func (f FilterState) Values(dim FilterDimension) []string {
	switch dim {
	case DimensionTime:
		return f.Time
	case DimensionDifficulty:
		return f.Difficulty
	case DimensionType:
		return f.Type
	case DimensionRestrictions:
		return f.Restrictions
	default:
		return nil
	}
}

// Selected reports whether key is selected in dim.
func (f FilterState) Selected(dim FilterDimension, key string) bool {
	if dim == DimensionRestrictions {
		key = strings.ToLower(key)
	}
	return slices.Contains(f.Values(dim), key)
}

// Toggle returns a new state where key is added to dim if absent and
// removed if present. Restriction keys are lower-cased.
func (f FilterState) Toggle(dim FilterDimension, key string) FilterState {
	if dim == DimensionRestrictions {
		key = strings.ToLower(key)
	}

	current := f.Values(dim)
	next := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == key {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, key)
	}

	out := FilterState{
		Time:         slices.Clone(f.Time),
		Difficulty:   slices.Clone(f.Difficulty),
		Type:         slices.Clone(f.Type),
		Restrictions: slices.Clone(f.Restrictions),
	}
	switch dim {
	case DimensionTime:
		out.Time = next
	case DimensionDifficulty:
		out.Difficulty = next
	case DimensionType:
		out.Type = next
	case DimensionRestrictions:
		out.Restrictions = next
	default:
		return f
	}
	return out
}

// Clear returns the empty state.
func (f FilterState) Clear() FilterState {
	return FilterState{}
}
