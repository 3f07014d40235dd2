// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── Recipes ─────────────────────────────────────────────────────────────────

func TestListRecipes_NormalizesEveryRecord(t *testing.T) {
	backend := newFakeBackend()
	backend.recipes = []map[string]any{
		{"_id": "a1", "name": "Tarta", "cookTime": "20", "difficulty": "Fácil", "image": "/img/tarta.png", "restrictions": []any{"Vegetariano"}},
		{"id": 7, "name": "Pasta", "cookTime": 40, "servings": 2, "difficulty": "DIFÍCIL", "image": "https://cdn.example.com/p.png"},
	}
	srv := backend.start(t)
	a := newTestAdapter(t, srv.URL)

	got, err := a.ListRecipes(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "a1", got[0].ID)
	assert.InDelta(t, 20.0, got[0].CookTime, 0.0001)
	assert.Equal(t, "fácil", got[0].Difficulty)
	assert.Equal(t, srv.URL+"/img/tarta.png", got[0].Image)
	assert.Equal(t, []string{"vegetariano"}, got[0].Restrictions)
	assert.Equal(t, []string{}, got[0].Ingredients)

	assert.Equal(t, "7", got[1].ID)
	assert.Equal(t, "difícil", got[1].Difficulty)
	assert.Equal(t, "https://cdn.example.com/p.png", got[1].Image)
	assert.Equal(t, []string{}, got[1].Restrictions)
}

func TestListRecipes_NonArrayOrText(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"json object", "application/json", `{"recipes": []}`},
		{"plain text", "text/plain", `maintenance`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).ListRecipes(context.Background())

			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestGetRecipe_NotFound(t *testing.T) {
	srv := newFakeBackend().start(t)
	a := newTestAdapter(t, srv.URL)

	_, err := a.GetRecipe(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "Not Found", reqErr.Status)
	assert.Equal(t, "recipe not found", reqErr.Body)
	assert.Equal(t, "HTTP 404 Not Found - recipe not found", reqErr.Error())
}

func TestGetRecipe_TextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetRecipe(context.Background(), "x")

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestRecipeCRUD_RoundTrip(t *testing.T) {
	backend := newFakeBackend()
	srv := backend.start(t)
	a := newTestAdapter(t, srv.URL)
	a.SetToken("admin-token")
	ctx := context.Background()

	in := models.RecipeInput{
		Name:         "Sopa",
		Description:  "Caliente",
		Image:        "/assets/images/recipes/sopa.png",
		CookTime:     25,
		Servings:     4,
		Difficulty:   "Fácil",
		Category:     "Cena",
		Ingredients:  []string{"agua"},
		Instructions: []string{"hervir"},
		Restrictions: []string{"sin gluten"},
	}

	created, err := a.CreateRecipe(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "new-1", created.ID)
	assert.Equal(t, "fácil", created.Difficulty)
	assert.Equal(t, srv.URL+"/assets/images/recipes/sopa.png", created.Image)
	assert.Equal(t, "Bearer admin-token", backend.headers().Get("Authorization"))

	in.Name = "Sopa de verduras"
	updated, err := a.UpdateRecipe(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Sopa de verduras", updated.Name)

	got, err := a.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, a.DeleteRecipe(ctx, created.ID))
	assert.ErrorIs(t, a.DeleteRecipe(ctx, created.ID), ErrNotFound)
}

// ── Headers ─────────────────────────────────────────────────────────────────

func TestSend_OmitsBearerWithoutToken(t *testing.T) {
	backend := newFakeBackend()
	srv := backend.start(t)
	a := newTestAdapter(t, srv.URL)

	_, err := a.ListRecipes(context.Background())
	require.NoError(t, err)

	h := backend.headers()
	assert.Empty(t, h.Get("Authorization"))
	assert.Equal(t, "application/json", h.Get("Content-Type"))

	id, err := uuid.Parse(h.Get(requestIDHeader))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestSend_UsesRequestIDFromContext(t *testing.T) {
	backend := newFakeBackend()
	srv := backend.start(t)
	a := newTestAdapter(t, srv.URL)

	ctx := utils.WithRequestID(context.Background(), "trace-42")
	_, err := a.ListRecipes(ctx)
	require.NoError(t, err)

	assert.Equal(t, "trace-42", backend.headers().Get(requestIDHeader))
}

func TestSetToken_TrimsAndClears(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	a.SetToken("  abc \n")
	assert.Equal(t, "abc", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestLogin_DerivesRole(t *testing.T) {
	tests := []struct {
		name    string
		isAdmin bool
		want    models.Role
	}{
		{"admin", true, models.RoleAdmin},
		{"regular user", false, models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			backend.users["ana@example.com"] = map[string]any{
				"id": 12, "email": "ana@example.com", "username": "ana",
				"password": "pw", "is_admin": tt.isAdmin,
			}
			srv := backend.start(t)
			a := newTestAdapter(t, srv.URL)

			got, err := a.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "pw"})

			require.NoError(t, err)
			assert.Equal(t, "12", got.User.ID)
			assert.Equal(t, "ana", got.User.Username)
			assert.Equal(t, tt.want, got.User.Role)
			assert.Nil(t, got.User.AvatarURL)
			assert.Equal(t, "token-ana@example.com", got.Token)
			// the session owner decides when to adopt the token
			assert.Empty(t, a.Token())
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := newFakeBackend().start(t)
	a := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@example.com", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"id": "1"}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestRegister_SendsNullOptionalFields(t *testing.T) {
	backend := newFakeBackend()
	srv := backend.start(t)
	a := newTestAdapter(t, srv.URL)

	got, err := a.Register(context.Background(), models.RegisterRequest{
		Email: "leo@example.com", Password: "pw", Username: "leo",
	})

	require.NoError(t, err)
	assert.Equal(t, "leo", got.User.Username)
	assert.Equal(t, models.RoleUser, got.User.Role)

	body := backend.body()
	assert.Contains(t, body, "birthday")
	assert.Nil(t, body["birthday"])
	assert.Contains(t, body, "gender")
	assert.Nil(t, body["gender"])
}

func TestRegister_Conflict(t *testing.T) {
	backend := newFakeBackend()
	backend.users["leo@example.com"] = map[string]any{"id": 1}
	srv := backend.start(t)

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{Email: "leo@example.com"})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestValidate(t *testing.T) {
	backend := newFakeBackend()
	backend.tokens["good"] = true
	srv := backend.start(t)
	a := newTestAdapter(t, srv.URL)
	a.SetToken("ignored-for-validation")

	require.NoError(t, a.Validate(context.Background(), "good"))
	assert.Equal(t, "Bearer good", backend.headers().Get("Authorization"))

	err := a.Validate(context.Background(), "stale")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
}

func TestValidate_TransportFailureIsNotRequestError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url).Validate(context.Background(), "good")

	require.Error(t, err)
	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr))
}

// ── Favorites ───────────────────────────────────────────────────────────────

func TestFavorites_AddListRemove(t *testing.T) {
	backend := newFakeBackend()
	srv := backend.start(t)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, a.AddFavorite(ctx, "u1", "r1"))
	assert.Equal(t, "r1", backend.body()["recipeId"])
	require.NoError(t, a.AddFavorite(ctx, "u1", "r2"))

	links, err := a.ListFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.FavoriteLink{{RecipeID: "r1"}, {RecipeID: "r2"}}, links)

	require.NoError(t, a.RemoveFavorite(ctx, "u1", "r1"))
	assert.Equal(t, "r1", backend.body()["recipeId"])

	links, err = a.ListFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.FavoriteLink{{RecipeID: "r2"}}, links)
}

func TestListFavorites_NumericIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{
			map[string]any{"recipe_id": 5},
			map[string]any{"recipe_id": nil},
			map[string]any{"recipe_id": "9"},
		})
	}))
	defer srv.Close()

	links, err := newTestAdapter(t, srv.URL).ListFavorites(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []models.FavoriteLink{{RecipeID: "5"}, {RecipeID: "9"}}, links)
}

// ── Comments ────────────────────────────────────────────────────────────────

func TestComments_AddListDelete(t *testing.T) {
	backend := newFakeBackend()
	srv := backend.start(t)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, a.AddComment(ctx, "r1", models.NewComment{Content: "Rica", UserID: "u1"}))
	assert.Equal(t, "u1", backend.body()["userId"])

	comments, err := a.ListComments(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "1", comments[0].ID)
	assert.Equal(t, "Rica", comments[0].Content)
	assert.Equal(t, "cook", comments[0].AuthorName())
	assert.True(t, comments[0].OwnedBy("u1"))
	require.NotNil(t, comments[0].CreatedAt)
	assert.Equal(t, 2026, comments[0].CreatedAt.Year())

	require.NoError(t, a.DeleteComment(ctx, "1", "u1"))
	assert.Equal(t, "u1", backend.body()["userId"])
}

func TestListComments_MissingAuthor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{map[string]any{"id": "c1", "content": "hola", "created_at": "ayer"}})
	}))
	defer srv.Close()

	comments, err := newTestAdapter(t, srv.URL).ListComments(context.Background(), "r1")

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, models.DefaultCommentAuthor, comments[0].AuthorName())
	assert.Nil(t, comments[0].CreatedAt)
}

// ── Limiter ─────────────────────────────────────────────────────────────────

func TestSend_WaitsOnLimiter(t *testing.T) {
	srv := newFakeBackend().start(t)
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress: srv.URL,
		RateLimit:   0.01,
		RateBurst:   1,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.ListRecipes(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = a.ListRecipes(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
}

// ── Misc ────────────────────────────────────────────────────────────────────

func TestRecipeDocumentURL(t *testing.T) {
	a := newTestAdapter(t, "https://api.example.com/")
	assert.Equal(t, "https://api.example.com/rdf/abc%201", a.RecipeDocumentURL("abc 1"))
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"https with path", "https://api.example.com/v1/", "https://api.example.com/v1", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
