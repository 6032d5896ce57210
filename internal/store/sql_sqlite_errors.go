// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite. Only
// lock contention is worth retrying.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// sqliteViolation recognises constraint errors such as
// "UNIQUE constraint failed: users.email". SQLite does not name the violated
// foreign key, so foreign key violations carry an empty target.
func sqliteViolation(err error) (constraintViolation, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return constraintViolation{}, false
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		target := ""
		if _, columns, found := strings.Cut(sqliteErr.Error(), "failed: "); found {
			// composite keys are reported as "t.a, t.b"; only single columns are declared here
			target = strings.TrimSpace(columns)
		}
		return constraintViolation{kind: uniqueViolation, target: target}, true
	case sqlite3.ErrConstraintForeignKey:
		return constraintViolation{kind: foreignKeyViolation}, true
	}

	return constraintViolation{}, false
}
