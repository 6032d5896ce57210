// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the blog
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, password hashing and presentation settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSignKey is the secret used to sign session tokens.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY" json:"-"`

	// SessionIssuer is the "iss" claim embedded in every session token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration specifies how long a session remains valid after login.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// PasswordHashIterations is the PBKDF2 iteration count used for newly
	// registered passwords. Existing hashes keep the count they were made with.
	// Env: APP_PASSWORD_HASH_ITERATIONS
	PasswordHashIterations int `env:"PASSWORD_HASH_ITERATIONS"`

	// AdminEmail is the public contact address of the blog owner shown on
	// every page.
	// Env: APP_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`

	// SecureCookies marks the session cookie as Secure (HTTPS only).
	// Env: APP_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend. "postgres://" and "postgresql://" DSNs are
	// opened with pgx; anything else is treated as a SQLite database file
	// (an optional "sqlite://" prefix is stripped).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
