// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	limiter *rate.Limiter
	ids     *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Outbound requests wait on a token-bucket limiter of
// adapterCfg.RateLimit requests per second; a zero limit disables it.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if adapterCfg.RateLimit > 0 {
		burst := adapterCfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(adapterCfg.RateLimit), burst)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		limiter: limiter,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// RecipeDocumentURL implements [ServerAdapter].
func (h *httpServerAdapter) RecipeDocumentURL(recipeID string) string {
	return h.baseURL + "/rdf/" + url.PathEscape(recipeID)
}

// ListRecipes implements [ServerAdapter]. GET /api/recipes.
func (h *httpServerAdapter) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	resp, err := h.send(ctx, h.Token(), resty.MethodGet, "/api/recipes", nil)
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !isJSON(resp) {
		return []models.Recipe{}, nil
	}

	return decodeRecipeList(resp.Body(), h.baseURL), nil
}

// GetRecipe implements [ServerAdapter]. GET /api/recipes/{id}.
func (h *httpServerAdapter) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	resp, err := h.send(ctx, h.Token(), resty.MethodGet, "/api/recipes/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	return h.recipeResult(resp)
}

// CreateRecipe implements [ServerAdapter]. POST /api/recipes.
func (h *httpServerAdapter) CreateRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error) {
	resp, err := h.send(ctx, h.Token(), resty.MethodPost, "/api/recipes", in)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	return h.recipeResult(resp)
}

// UpdateRecipe implements [ServerAdapter]. PUT /api/recipes/{id}.
func (h *httpServerAdapter) UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) (models.Recipe, error) {
	resp, err := h.send(ctx, h.Token(), resty.MethodPut, "/api/recipes/"+url.PathEscape(id), in)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe request: %w", err)
	}
	return h.recipeResult(resp)
}

// DeleteRecipe implements [ServerAdapter]. DELETE /api/recipes/{id}. The
// response body, JSON or text, is only logged.
func (h *httpServerAdapter) DeleteRecipe(ctx context.Context, id string) error {
	resp, err := h.send(ctx, h.Token(), resty.MethodDelete, "/api/recipes/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.DeleteRecipe").
		Str("recipe_id", id).
		Bool("json", isJSON(resp)).
		Str("response", string(resp.Body())).
		Msg("recipe deleted")
	return nil
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	resp, err := h.send(ctx, "", resty.MethodPost, "/api/auth/login", req)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	result, err := decodeAuthResult(resp.Body())
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login decode response: %w", err)
	}
	return result, nil
}

// Register implements [ServerAdapter]. POST /api/auth/register. Absent
// birthday and gender are sent as null.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	resp, err := h.send(ctx, "", resty.MethodPost, "/api/auth/register", req)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	result, err := decodeAuthResult(resp.Body())
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("register decode response: %w", err)
	}
	return result, nil
}

// Validate implements [ServerAdapter]. GET /api/validate with token, which
// may differ from the adapter token while a stored session is checked.
func (h *httpServerAdapter) Validate(ctx context.Context, token string) error {
	resp, err := h.send(ctx, token, resty.MethodGet, "/api/validate", nil)
	if err != nil {
		return fmt.Errorf("validate request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListFavorites implements [ServerAdapter]. GET /api/auth/favorites/{userId}.
func (h *httpServerAdapter) ListFavorites(ctx context.Context, userID string) ([]models.FavoriteLink, error) {
	resp, err := h.send(ctx, h.Token(), resty.MethodGet, favoritesPath(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("list favorites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !isJSON(resp) {
		return []models.FavoriteLink{}, nil
	}

	return decodeFavoriteLinks(resp.Body()), nil
}

type favoriteBody struct {
	RecipeID string `json:"recipeId"`
}

// AddFavorite implements [ServerAdapter]. PUT /api/auth/favorites/{userId}.
func (h *httpServerAdapter) AddFavorite(ctx context.Context, userID, recipeID string) error {
	resp, err := h.send(ctx, h.Token(), resty.MethodPut, favoritesPath(userID), favoriteBody{RecipeID: recipeID})
	if err != nil {
		return fmt.Errorf("add favorite request: %w", err)
	}
	return mapHTTPError(resp)
}

// RemoveFavorite implements [ServerAdapter]. DELETE /api/auth/favorites/{userId}
// with the recipe id in the body.
func (h *httpServerAdapter) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	resp, err := h.send(ctx, h.Token(), resty.MethodDelete, favoritesPath(userID), favoriteBody{RecipeID: recipeID})
	if err != nil {
		return fmt.Errorf("remove favorite request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListComments implements [ServerAdapter]. GET /api/comments/{recipeId}.
func (h *httpServerAdapter) ListComments(ctx context.Context, recipeID string) ([]models.Comment, error) {
	resp, err := h.send(ctx, h.Token(), resty.MethodGet, "/api/comments/"+url.PathEscape(recipeID), nil)
	if err != nil {
		return nil, fmt.Errorf("list comments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if !isJSON(resp) {
		return []models.Comment{}, nil
	}

	return decodeComments(resp.Body()), nil
}

// AddComment implements [ServerAdapter]. POST /api/comments/{recipeId}.
func (h *httpServerAdapter) AddComment(ctx context.Context, recipeID string, c models.NewComment) error {
	resp, err := h.send(ctx, h.Token(), resty.MethodPost, "/api/comments/"+url.PathEscape(recipeID), c)
	if err != nil {
		return fmt.Errorf("add comment request: %w", err)
	}
	return mapHTTPError(resp)
}

type deleteCommentBody struct {
	UserID string `json:"userId"`
}

// DeleteComment implements [ServerAdapter]. DELETE /api/comments/{commentId}.
func (h *httpServerAdapter) DeleteComment(ctx context.Context, commentID, userID string) error {
	resp, err := h.send(ctx, h.Token(), resty.MethodDelete, "/api/comments/"+url.PathEscape(commentID), deleteCommentBody{UserID: userID})
	if err != nil {
		return fmt.Errorf("delete comment request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) recipeResult(resp *resty.Response) (models.Recipe, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}
	if !isJSON(resp) {
		return models.Recipe{}, fmt.Errorf("%w: recipe is not JSON", ErrUnexpectedResponse)
	}

	recipe, err := decodeRecipe(resp.Body(), h.baseURL)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return recipe, nil
}

// send waits on the limiter and executes one request. The bearer header is
// attached only when token is non-empty; body is serialized when non-nil.
func (h *httpServerAdapter) send(ctx context.Context, token, method, path string, body any) (*resty.Response, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, requestID)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpServerAdapter.send").
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("request failed")
		return nil, err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.send").
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("request done")
	return resp, nil
}

func favoritesPath(userID string) string {
	return "/api/auth/favorites/" + url.PathEscape(userID)
}
