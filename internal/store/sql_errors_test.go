// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyViolation_Postgres(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantOK    bool
		wantKind  violationKind
		wantTable string
	}{
		{
			name:      "unique email",
			err:       pgError(pgerrcode.UniqueViolation, "users_email_key"),
			wantOK:    true,
			wantKind:  uniqueViolation,
			wantTable: constraintUserEmail,
		},
		{
			name:      "wrapped unique title",
			err:       fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation, "blog_posts_title_key")),
			wantOK:    true,
			wantKind:  uniqueViolation,
			wantTable: constraintPostTitle,
		},
		{
			name:      "foreign key",
			err:       pgError(pgerrcode.ForeignKeyViolation, "comments_post_id_fkey"),
			wantOK:    true,
			wantKind:  foreignKeyViolation,
			wantTable: constraintCommentPost,
		},
		{
			name:      "unknown constraint keeps its name",
			err:       pgError(pgerrcode.UniqueViolation, "other_key"),
			wantOK:    true,
			wantKind:  uniqueViolation,
			wantTable: "other_key",
		},
		{
			name:   "not a violation",
			err:    pgError(pgerrcode.SyntaxError, ""),
			wantOK: false,
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			wantOK: false,
		},
		{
			name:   "nil",
			err:    nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := classifyViolation(tt.err)

			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantKind, v.kind)
				assert.Equal(t, tt.wantTable, v.target)
			}
		})
	}
}

func TestClassifyViolation_SQLiteForeignKey(t *testing.T) {
	err := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}

	assert.True(t, isForeignKeyViolation(err))
	assert.False(t, isUniqueViolation(err, constraintUserEmail))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
		{name: "wrapped", err: fmt.Errorf("tx: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: Retryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}

func TestTimestampScan(t *testing.T) {
	want := time.Date(2026, 10, 19, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		src     any
		want    time.Time
		wantErr bool
	}{
		{name: "time value", src: want, want: want},
		{name: "sqlite current timestamp", src: "2026-10-19 12:30:45", want: want},
		{name: "bytes", src: []byte("2026-10-19T12:30:45Z"), want: want},
		{name: "nil", src: nil, want: time.Time{}},
		{name: "garbage", src: "yesterday", wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			err := timestamp{&got}.Scan(tt.src)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}
