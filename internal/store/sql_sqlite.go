// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

const sqlitePrefix = "sqlite://"

// NewConnectSQLite opens (creating it if needed) the SQLite database file
// named by cfg.DSN. Foreign key enforcement is switched on for every
// connection of the pool.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path := strings.TrimPrefix(cfg.DSN, sqlitePrefix)

	// db will be in file
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return newDB(conn, migrations.DialectSQLite, log), nil
}

func sqliteDSN(path string) string {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return path + separator + "_foreign_keys=on&_busy_timeout=5000"
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// timestamp scans a time column from either driver. SQLite only converts
// columns with a declared time type, which RETURNING does not always carry,
// so textual values are parsed with the driver's own layouts.
type timestamp struct {
	dest *time.Time
}

func (t timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t.dest = v
		return nil
	case nil:
		*t.dest = time.Time{}
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	}

	return fmt.Errorf("unsupported timestamp type %T", src)
}

func (t timestamp) parse(value string) error {
	value = strings.TrimSuffix(value, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			*t.dest = parsed
			return nil
		}
	}

	return fmt.Errorf("cannot parse timestamp %q", value)
}
