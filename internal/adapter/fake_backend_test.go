// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// fakeBackend is an in-memory recipe backend routed with chi. Handlers
// record the last request headers and bodies for assertions.
type fakeBackend struct {
	mu sync.Mutex

	recipes   []map[string]any
	favorites map[string][]string
	comments  map[string][]map[string]any
	users     map[string]map[string]any // by email
	tokens    map[string]bool

	lastHeaders http.Header
	lastBody    map[string]any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		favorites: make(map[string][]string),
		comments:  make(map[string][]map[string]any),
		users:     make(map[string]map[string]any),
		tokens:    make(map[string]bool),
	}
}

func (f *fakeBackend) start(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(f.record)

	r.Route("/api/recipes", func(r chi.Router) {
		r.Get("/", f.listRecipes)
		r.Post("/", f.createRecipe)
		r.Get("/{id}", f.getRecipe)
		r.Put("/{id}", f.updateRecipe)
		r.Delete("/{id}", f.deleteRecipe)
	})
	r.Post("/api/auth/login", f.login)
	r.Post("/api/auth/register", f.register)
	r.Get("/api/validate", f.validate)
	r.Get("/api/auth/favorites/{userID}", f.listFavorites)
	r.Put("/api/auth/favorites/{userID}", f.addFavorite)
	r.Delete("/api/auth/favorites/{userID}", f.removeFavorite)
	r.Get("/api/comments/{recipeID}", f.listComments)
	r.Post("/api/comments/{recipeID}", f.addComment)
	r.Delete("/api/comments/{commentID}", f.deleteComment)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.lastHeaders = r.Header.Clone()
		f.lastBody = body
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (f *fakeBackend) headers() http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastHeaders
}

func (f *fakeBackend) body() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBody
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeBackend) findRecipe(id string) (int, map[string]any) {
	for i, r := range f.recipes {
		if rid, ok := r["_id"]; ok && rid == id {
			return i, r
		}
		if rid, ok := r["id"]; ok && rid == id {
			return i, r
		}
	}
	return -1, nil
}

func (f *fakeBackend) listRecipes(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, f.recipes)
}

func (f *fakeBackend) getRecipe(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, rec := f.findRecipe(chi.URLParam(r, "id"))
	if rec == nil {
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (f *fakeBackend) createRecipe(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.lastBody
	rec["_id"] = "new-1"
	f.recipes = append(f.recipes, rec)
	writeJSON(w, http.StatusCreated, rec)
}

func (f *fakeBackend) updateRecipe(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := chi.URLParam(r, "id")
	i, _ := f.findRecipe(id)
	if i < 0 {
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	}
	rec := f.lastBody
	rec["_id"] = id
	f.recipes[i] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (f *fakeBackend) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, _ := f.findRecipe(chi.URLParam(r, "id"))
	if i < 0 {
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	}
	f.recipes = append(f.recipes[:i], f.recipes[i+1:]...)
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("deleted"))
}

func (f *fakeBackend) login(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email, _ := f.lastBody["email"].(string)
	u, ok := f.users[email]
	if !ok || u["password"] != f.lastBody["password"] {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	token := "token-" + email
	f.tokens[token] = true
	writeJSON(w, http.StatusOK, map[string]any{"user": u, "token": token})
}

func (f *fakeBackend) register(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email, _ := f.lastBody["email"].(string)
	if _, exists := f.users[email]; exists {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}
	u := map[string]any{
		"id":       len(f.users) + 1,
		"email":    email,
		"username": f.lastBody["username"],
		"password": f.lastBody["password"],
		"is_admin": false,
	}
	f.users[email] = u
	token := "token-" + email
	f.tokens[token] = true
	writeJSON(w, http.StatusCreated, map[string]any{"user": u, "token": token})
}

func (f *fakeBackend) validate(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) <= len(prefix) || !f.tokens[auth[len(prefix):]] {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}

func (f *fakeBackend) listFavorites(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	links := make([]map[string]any, 0)
	for _, id := range f.favorites[chi.URLParam(r, "userID")] {
		links = append(links, map[string]any{"recipe_id": id})
	}
	writeJSON(w, http.StatusOK, links)
}

func (f *fakeBackend) addFavorite(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID := chi.URLParam(r, "userID")
	id, _ := f.lastBody["recipeId"].(string)
	f.favorites[userID] = append(f.favorites[userID], id)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (f *fakeBackend) removeFavorite(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID := chi.URLParam(r, "userID")
	id, _ := f.lastBody["recipeId"].(string)
	kept := f.favorites[userID][:0]
	for _, fav := range f.favorites[userID] {
		if fav != id {
			kept = append(kept, fav)
		}
	}
	f.favorites[userID] = kept
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeBackend) listComments(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.comments[chi.URLParam(r, "recipeID")]
	if list == nil {
		list = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (f *fakeBackend) addComment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	recipeID := chi.URLParam(r, "recipeID")
	c := map[string]any{
		"id":         len(f.comments[recipeID]) + 1,
		"content":    f.lastBody["content"],
		"created_at": "2026-01-02T10:00:00Z",
		"users":      map[string]any{"id": f.lastBody["userId"], "username": "cook"},
	}
	f.comments[recipeID] = append(f.comments[recipeID], c)
	writeJSON(w, http.StatusCreated, c)
}

func (f *fakeBackend) deleteComment(w http.ResponseWriter, _ *http.Request) {
	if _, ok := f.body()["userId"]; !ok {
		http.Error(w, "userId required", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
