// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTitleAlreadyExists is returned when a post is created or renamed
	// with a title that another post already has.
	ErrTitleAlreadyExists = errors.New("post title already exists")

	// ErrUserNotFound is returned when a user lookup produces an empty
	// result set, or when a write references a user that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPostNotFound is returned when a post lookup, update or delete
	// targets an identifier that does not exist.
	ErrPostNotFound = errors.New("post was not found")

	// ErrAdministratorExists is returned when an insert tries to create a
	// second administrator. The user repository resolves it internally.
	ErrAdministratorExists = errors.New("administrator already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrRollingBackTransaction is returned when rolling back a failed
	// transaction fails as well.
	ErrRollingBackTransaction = errors.New("failed to roll back transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
