// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// FavoriteLink is a user-to-recipe bookmark as returned by the backend.
type FavoriteLink struct {
	RecipeID string `json:"recipe_id"`
}

// FavoriteSet is the set of recipe IDs the current user marked as favorite.
// It is derived state: always rebuilt from the backend.
type FavoriteSet map[string]struct{}

// NewFavoriteSet builds a set from ids.
func NewFavoriteSet(ids ...string) FavoriteSet {
	s := make(FavoriteSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set is empty.
func (s FavoriteSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of favorites.
func (s FavoriteSet) Len() int {
	return len(s)
}

// IDs returns the IDs sorted, for stable rendering and comparisons.
func (s FavoriteSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy.
func (s FavoriteSet) Clone() FavoriteSet {
	c := make(FavoriteSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}
