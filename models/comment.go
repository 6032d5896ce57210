// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Comment is a reader's note attached to a [Post].
type Comment struct {
	CommentID int64  `json:"id"`
	Text      string `json:"text" validate:"required"`
	AuthorID  int64  `json:"author_id" validate:"required,gt=0"`
	PostID    int64  `json:"post_id" validate:"required,gt=0"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// CommentView is a [Comment] resolved to its author for rendering.
type CommentView struct {
	Comment

	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}
