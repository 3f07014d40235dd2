// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultCommentAuthor is displayed when the backend did not join the
// author record.
const DefaultCommentAuthor = "Usuario"

// CommentAuthor is the user record joined to a comment.
type CommentAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Comment is a user comment attached to a recipe.
type Comment struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	Author    *CommentAuthor `json:"users,omitempty"`
}

// AuthorName returns the author's username or [DefaultCommentAuthor].
func (c Comment) AuthorName() string {
	if c.Author == nil || c.Author.Username == "" {
		return DefaultCommentAuthor
	}
	return c.Author.Username
}

// OwnedBy reports whether userID wrote the comment.
func (c Comment) OwnedBy(userID string) bool {
	return userID != "" && c.Author != nil && c.Author.ID == userID
}

// NewComment is the body of a create-comment request.
type NewComment struct {
	Content string `json:"content"`
	UserID  string `json:"userId"`
}
