// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/rs/zerolog"
)

// Role is the authorization level of a [User].
type Role string

const (
	// RoleAdministrator is granted to the first registered account only.
	// It is the single principal allowed to create, edit and delete posts.
	RoleAdministrator Role = "administrator"

	// RoleMember is granted to every account registered after the first one.
	RoleMember Role = "member"
)

// User represents a registered account of the blog.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique, monotonically assigned identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login key of the user. Comparison is case-sensitive.
	Email string `json:"email"`

	// PasswordHash is the salted PBKDF2 digest of the user's password.
	// It is never serialized, logged or rendered.
	PasswordHash string `json:"-"`

	// Name is the display name shown next to posts and comments.
	Name string `json:"name"`

	// Role is assigned once, when the row is created.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdministrator reports whether the user holds [RoleAdministrator].
func (u User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] so that a user
// can be attached to log entries without leaking the password hash.
func (u User) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("id", u.UserID).
		Str("email", u.Email).
		Str("name", u.Name).
		Str("role", string(u.Role))
}
