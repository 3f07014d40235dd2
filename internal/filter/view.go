// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package filter

import (
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// View memoizes [Apply]. The result is recomputed only after the source
// list was replaced, or the query or the filter state changed; reading
// Result repeatedly returns the cached slice.
//
// The zero value is an empty view ready to use.
type View struct {
	mu sync.Mutex

	recipes []models.Recipe
	query   string
	state   models.FilterState

	result        []models.Recipe
	dirty         bool
	computed      bool
	recomputeRuns int
}

// NewView returns a view over recipes with an empty query and filter state.
func NewView(recipes []models.Recipe) *View {
	return &View{recipes: recipes, dirty: true}
}

// SetRecipes replaces the source list. Any call invalidates the cached
// result, the slice is treated as a new list.
func (v *View) SetRecipes(recipes []models.Recipe) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.recipes = recipes
	v.dirty = true
}

// SetQuery changes the text query. Setting the same query is a no-op.
func (v *View) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.computed && query == v.query {
		return
	}
	v.query = query
	v.dirty = true
}

// SetState changes the filter selection. An equal state is a no-op.
func (v *View) SetState(state models.FilterState) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.computed && state.Equal(v.state) {
		return
	}
	v.state = state
	v.dirty = true
}

// Query returns the current text query.
func (v *View) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// State returns the current filter selection.
func (v *View) State() models.FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Total returns the size of the unfiltered source list.
func (v *View) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.recipes)
}

// Result returns the filtered list, recomputing it if an input changed.
// Callers must not modify the returned slice.
func (v *View) Result() []models.Recipe {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.dirty || !v.computed {
		v.result = Apply(v.recipes, v.query, v.state)
		v.dirty = false
		v.computed = true
		v.recomputeRuns++
	}
	return v.result
}

// Recomputations returns how many times Result had to run the filter.
func (v *View) Recomputations() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.recomputeRuns
}
