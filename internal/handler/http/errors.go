// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPostID is returned when the {id} path segment is not a
	// positive integer. It is reported as 404 Not Found.
	ErrInvalidPostID = errors.New("invalid post id")

	// ErrInvalidForm is returned when the request body cannot be parsed as a
	// form.
	ErrInvalidForm = errors.New("invalid form submitted")

	// ErrPageNotFound is rendered for unknown paths.
	ErrPageNotFound = errors.New("page not found")
)
