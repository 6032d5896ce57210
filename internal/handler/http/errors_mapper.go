// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// (e.g. ErrInvalidCredentials around ErrUserNotFound) maps to the first one.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{validators.ErrInvalidInput, http.StatusBadRequest},
	{ErrInvalidForm, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{ErrInvalidPostID, http.StatusNotFound},
	{ErrPageNotFound, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrTitleAlreadyExists, http.StatusConflict},
	{store.ErrPostNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
