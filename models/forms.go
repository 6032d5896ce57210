// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterForm carries the fields submitted on the registration page.
type RegisterForm struct {
	Email    string `form:"email" validate:"required,email,max=250"`
	Password string `form:"password" validate:"required,max=250"`
	Name     string `form:"name" validate:"required,max=250"`
}

// LoginForm carries the fields submitted on the login page.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// CommentForm carries the text submitted below a post.
type CommentForm struct {
	Text string `form:"comment_text" validate:"required"`
}
