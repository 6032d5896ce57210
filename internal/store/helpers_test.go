// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newPostgresDB wraps a sqlmock connection as a PostgreSQL-dialect DB.
func newPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock := newTestDB(t)
	return newDB(conn, migrations.DialectPostgres, logger.Nop()), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}
