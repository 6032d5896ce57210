// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

// maxTxAttempts bounds how many times [DB.WithinTx] runs a transaction whose
// failure was classified as [Retryable].
const maxTxAttempts = 3

// ErrorClassificator decides whether a failed database operation may be
// retried. Each supported driver has its own implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a connection pool bound to one SQL dialect. It carries a squirrel
// statement builder with the dialect's placeholder format, so every query in
// this package is written once for both databases.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// WithinTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise. Failures classified as [Retryable]
// restart the whole transaction, up to maxTxAttempts times in total.
func (db *DB) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
			return err
		}

		log.Warn().Err(err).
			Str("func", "DB.WithinTx").
			Int("attempt", attempt).
			Msg("retryable transaction failure")
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("%w: %w", ErrRollingBackTransaction, rbErr))
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
