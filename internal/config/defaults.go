// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress            = "localhost:5000"
	DefaultRequestTimeout         = 30 * time.Second
	DefaultShutdownTimeout        = 10 * time.Second
	DefaultDSN                    = "blog.db"
	DefaultSessionIssuer          = "go-blog"
	DefaultSessionDuration        = 24 * time.Hour
	DefaultPasswordHashIterations = 600_000
	DefaultLogLevel               = "info"
)

// defaultConfig returns the lowest-priority source of the config builder.
// SessionSignKey has no default and must be provided explicitly.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:          DefaultSessionIssuer,
			SessionDuration:        DefaultSessionDuration,
			PasswordHashIterations: DefaultPasswordHashIterations,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
