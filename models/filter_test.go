// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterState_ToggleAddsAndRemoves(t *testing.T) {
	var f FilterState

	f = f.Toggle(DimensionTime, TimeBucket15to30)
	assert.Equal(t, []string{TimeBucket15to30}, f.Time)
	assert.True(t, f.Selected(DimensionTime, TimeBucket15to30))

	f = f.Toggle(DimensionTime, TimeBucketOver60)
	assert.Equal(t, []string{TimeBucket15to30, TimeBucketOver60}, f.Time)

	f = f.Toggle(DimensionTime, TimeBucket15to30)
	assert.Equal(t, []string{TimeBucketOver60}, f.Time)
	assert.False(t, f.Selected(DimensionTime, TimeBucket15to30))
}

func TestFilterState_ToggleDoesNotMutateOriginal(t *testing.T) {
	orig := FilterState{Difficulty: []string{"fácil"}}

	next := orig.Toggle(DimensionDifficulty, "difícil")

	assert.Equal(t, []string{"fácil"}, orig.Difficulty)
	assert.Equal(t, []string{"fácil", "difícil"}, next.Difficulty)
	assert.False(t, orig.Equal(next))
}

func TestFilterState_ToggleLowercasesRestrictions(t *testing.T) {
	f := FilterState{}.Toggle(DimensionRestrictions, "Sin Gluten")

	assert.Equal(t, []string{"sin gluten"}, f.Restrictions)
	assert.True(t, f.Selected(DimensionRestrictions, "SIN GLUTEN"))
}

func TestFilterState_ToggleUnknownDimension(t *testing.T) {
	f := FilterState{Type: []string{"Cena"}}

	assert.Equal(t, f, f.Toggle(FilterDimension("color"), "rojo"))
}

func TestFilterState_ClearAndIsEmpty(t *testing.T) {
	f := FilterState{Time: []string{"60+"}, Restrictions: []string{"vegetariano"}}
	assert.False(t, f.IsEmpty())

	cleared := f.Clear()
	assert.True(t, cleared.IsEmpty())
	assert.True(t, cleared.Equal(FilterState{Time: []string{}}))
}
