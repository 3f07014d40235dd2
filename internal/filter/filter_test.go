// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package filter

import (
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(recipes []models.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{ID: "1", Name: "Tarta de manzana", CookTime: 20, Difficulty: "fácil", Category: "Snack",
			Restrictions: []string{"vegetariano"}, Ingredients: []string{"Manzana", "Harina"}},
		{ID: "2", Name: "Pasta carbonara", CookTime: 40, Difficulty: "intermedio", Category: "Almuerzo",
			Ingredients: []string{"Pasta", "Huevo", "Panceta"}},
		{ID: "3", Name: "Ensalada", CookTime: 15, Difficulty: "fácil", Category: "Cena",
			Restrictions: []string{"vegetariano", "sin gluten", "sin lacteos"}, Ingredients: []string{"Lechuga", "Tomate"}},
		{ID: "4", Name: "Asado", CookTime: 90, Difficulty: "difícil", Category: "Almuerzo",
			Restrictions: []string{"sin gluten"}, Ingredients: []string{"Carne"}},
	}
}

// ── Identity ─────────────────────────────────────────────────────────────────

func TestApply_EmptyQueryAndStateIsIdentity(t *testing.T) {
	recipes := sampleRecipes()

	got := Apply(recipes, "", models.FilterState{})

	assert.Equal(t, recipes, got)
}

func TestApply_WhitespaceQueryIsIdentity(t *testing.T) {
	recipes := sampleRecipes()

	got := Apply(recipes, "   \t", models.FilterState{})

	assert.Equal(t, recipes, got)
}

func TestApply_NilInput(t *testing.T) {
	got := Apply(nil, "pasta", models.FilterState{Time: []string{"15-30"}})

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	recipes := sampleRecipes()
	before := sampleRecipes()

	_ = Apply(recipes, "a", models.FilterState{Difficulty: []string{"fácil"}})

	assert.Equal(t, before, recipes)
}

// ── Text query ───────────────────────────────────────────────────────────────

func TestApply_TextQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name substring", query: "tarta", want: []string{"Tarta de manzana"}},
		{name: "case insensitive", query: "PASTA", want: []string{"Pasta carbonara"}},
		{name: "trimmed", query: "  asado  ", want: []string{"Asado"}},
		{name: "ingredient substring", query: "huev", want: []string{"Pasta carbonara"}},
		{name: "ingredient case insensitive", query: "TOMATE", want: []string{"Ensalada"}},
		{name: "matches several in order", query: "an", want: []string{"Tarta de manzana", "Pasta carbonara"}},
		{name: "no match", query: "sushi", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleRecipes(), tt.query, models.FilterState{})
			assert.Equal(t, tt.want, names(got))
		})
	}
}

// ── Time buckets ─────────────────────────────────────────────────────────────

func TestInTimeBucket_Boundaries(t *testing.T) {
	tests := []struct {
		minutes float64
		bucket  string
		want    bool
	}{
		{14, models.TimeBucket15to30, false},
		{15, models.TimeBucket15to30, true},
		{30, models.TimeBucket15to30, true},
		{30, models.TimeBucket30to45, false},
		{30.5, models.TimeBucket30to45, true},
		{45, models.TimeBucket30to45, true},
		{45, models.TimeBucket45to60, false},
		{60, models.TimeBucket45to60, true},
		{60, models.TimeBucketOver60, false},
		{61, models.TimeBucketOver60, true},
		{20, "0-15", false},
		{20, "", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InTimeBucket(tt.minutes, tt.bucket), "minutes=%v bucket=%q", tt.minutes, tt.bucket)
	}
}

func TestApply_TimeBucketsAreOred(t *testing.T) {
	state := models.FilterState{Time: []string{models.TimeBucket15to30, models.TimeBucketOver60}}

	got := Apply(sampleRecipes(), "", state)

	assert.Equal(t, []string{"Tarta de manzana", "Ensalada", "Asado"}, names(got))
}

func TestApply_UnknownTimeBucketMatchesNothing(t *testing.T) {
	got := Apply(sampleRecipes(), "", models.FilterState{Time: []string{"rapido"}})

	assert.Empty(t, got)
}

// ── Difficulty / type ────────────────────────────────────────────────────────

func TestApply_DifficultyCaseInsensitive(t *testing.T) {
	got := Apply(sampleRecipes(), "", models.FilterState{Difficulty: []string{"FÁCIL", "Difícil"}})

	assert.Equal(t, []string{"Tarta de manzana", "Ensalada", "Asado"}, names(got))
}

func TestApply_TypeExactMatch(t *testing.T) {
	got := Apply(sampleRecipes(), "", models.FilterState{Type: []string{"Almuerzo"}})
	assert.Equal(t, []string{"Pasta carbonara", "Asado"}, names(got))

	// категория сравнивается без приведения регистра
	got = Apply(sampleRecipes(), "", models.FilterState{Type: []string{"almuerzo"}})
	assert.Empty(t, got)
}

// ── Restrictions ─────────────────────────────────────────────────────────────

func TestApply_RestrictionsAreConjunctive(t *testing.T) {
	tagged := []models.Recipe{
		{ID: "a", Name: "only vegan", Restrictions: []string{"vegan"}},
		{ID: "b", Name: "vegan and gluten-free", Restrictions: []string{"vegan", "gluten-free"}},
	}

	got := Apply(tagged, "", models.FilterState{Restrictions: []string{"vegan", "gluten-free"}})

	assert.Equal(t, []string{"vegan and gluten-free"}, names(got))
}

func TestApply_RestrictionsCaseInsensitive(t *testing.T) {
	got := Apply(sampleRecipes(), "", models.FilterState{Restrictions: []string{"Sin Gluten"}})

	assert.Equal(t, []string{"Ensalada", "Asado"}, names(got))
}

// ── Combined ─────────────────────────────────────────────────────────────────

func TestApply_DimensionsAreAnded(t *testing.T) {
	state := models.FilterState{
		Difficulty:   []string{"fácil"},
		Restrictions: []string{"sin gluten"},
	}

	got := Apply(sampleRecipes(), "", state)

	assert.Equal(t, []string{"Ensalada"}, names(got))
}

func TestApply_QueryAndFilters(t *testing.T) {
	state := models.FilterState{Type: []string{"Almuerzo"}}

	got := Apply(sampleRecipes(), "carne", state)

	assert.Equal(t, []string{"Asado"}, names(got))
}

func TestApply_TartaPastaScenario(t *testing.T) {
	recipes := []models.Recipe{
		{Name: "Tarta", CookTime: 20, Difficulty: "facil"},
		{Name: "Pasta", CookTime: 40, Difficulty: "dificil"},
	}
	state := models.FilterState{Time: []string{"15-30"}, Difficulty: []string{}}

	got := Apply(recipes, "", state)

	require.Len(t, got, 1)
	assert.Equal(t, recipes[0], got[0])
}
