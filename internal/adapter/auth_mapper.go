// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

type rawUser struct {
	ID        flexString `json:"id"`
	Email     flexString `json:"email"`
	Username  flexString `json:"username"`
	IsAdmin   bool       `json:"is_admin"`
	AvatarURL flexString `json:"avatarUrl"`
}

type rawAuthResponse struct {
	User  *rawUser   `json:"user"`
	Token flexString `json:"token"`
}

// decodeAuthResult maps {user, token} into an [models.AuthResult]. The role
// is derived from "is_admin"; an empty avatar becomes nil.
func decodeAuthResult(body []byte) (models.AuthResult, error) {
	var raw rawAuthResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if raw.User == nil || raw.Token == "" {
		return models.AuthResult{}, fmt.Errorf("%w: missing user or token", ErrUnexpectedResponse)
	}

	user := models.User{
		ID:       string(raw.User.ID),
		Email:    string(raw.User.Email),
		Username: string(raw.User.Username),
		Role:     models.RoleFromAdminFlag(raw.User.IsAdmin),
	}
	if raw.User.AvatarURL != "" {
		avatar := string(raw.User.AvatarURL)
		user.AvatarURL = &avatar
	}

	return models.AuthResult{User: user, Token: string(raw.Token)}, nil
}

type rawFavoriteLink struct {
	RecipeID flexString `json:"recipe_id"`
}

// decodeFavoriteLinks keeps links with a non-empty recipe id. A body that
// is not an array yields no links.
func decodeFavoriteLinks(body []byte) []models.FavoriteLink {
	var raw []rawFavoriteLink
	if err := json.Unmarshal(body, &raw); err != nil {
		return []models.FavoriteLink{}
	}

	links := make([]models.FavoriteLink, 0, len(raw))
	for _, l := range raw {
		if l.RecipeID == "" {
			continue
		}
		links = append(links, models.FavoriteLink{RecipeID: string(l.RecipeID)})
	}
	return links
}

type rawComment struct {
	ID        flexString `json:"id"`
	Content   flexString `json:"content"`
	CreatedAt flexString `json:"created_at"`
	Users     *struct {
		ID       flexString `json:"id"`
		Username flexString `json:"username"`
	} `json:"users"`
}

// decodeComments maps the comment list. Unparseable timestamps are dropped,
// not fatal.
func decodeComments(body []byte) []models.Comment {
	var raw []rawComment
	if err := json.Unmarshal(body, &raw); err != nil {
		return []models.Comment{}
	}

	comments := make([]models.Comment, 0, len(raw))
	for _, c := range raw {
		comment := models.Comment{
			ID:      string(c.ID),
			Content: string(c.Content),
		}
		if ts, err := time.Parse(time.RFC3339Nano, string(c.CreatedAt)); err == nil {
			comment.CreatedAt = &ts
		}
		if c.Users != nil {
			comment.Author = &models.CommentAuthor{
				ID:       string(c.Users.ID),
				Username: string(c.Users.Username),
			}
		}
		comments = append(comments, comment)
	}
	return comments
}
