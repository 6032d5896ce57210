// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials wraps either store.ErrUserNotFound or
	// ErrWrongPassword.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("wrong password")

	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidSession marks a session token that can never become valid
	// again (empty, forged, expired). It is wrapped by ErrUnauthenticated.
	ErrInvalidSession = errors.New("invalid session token")
	ErrForbidden      = errors.New("administrator access required")

	ErrTokenCreationFailed   = errors.New("session token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
