// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the identity associated with the current request.
// The zero value is [Anonymous].
type Principal struct {
	UserID int64
	Email  string
	Name   string
	Role   Role
}

// Anonymous is the principal of a request without a valid session.
var Anonymous = Principal{}

// NewPrincipal builds the principal of an authenticated user.
func NewPrincipal(user User) Principal {
	return Principal{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}
}

// IsAnonymous reports whether no user is authenticated.
func (p Principal) IsAnonymous() bool {
	return p.UserID <= 0
}

// IsAdministrator reports whether the principal may manage posts.
func (p Principal) IsAdministrator() bool {
	return !p.IsAnonymous() && p.Role == RoleAdministrator
}
