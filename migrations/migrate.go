// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the versioned SQL schema of the blog and applies
// it with goose. Every supported database has its own directory of
// migrations because column types and auto-increment syntax differ.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Supported dialects. The values are goose dialect names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// Migrate applies all pending migrations for the given dialect.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := migrationsDir(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(dir)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect string) (fs.FS, error) {
	var name string
	switch dialect {
	case DialectPostgres:
		name = "postgres"
	case DialectSQLite:
		name = "sqlite"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	return fs.Sub(embedMigrations, name)
}
