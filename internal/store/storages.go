// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// Storages groups the repositories that share one database connection.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.DSN, applies the
// schema migrations and builds all repositories.
//
// DSNs starting with "postgres://" or "postgresql://" are opened with pgx;
// anything else is a SQLite database file.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("database schema is up to date")

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already prepared
// connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		db:                db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
