// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-session-sign-key session token signing key
//	-session-issuer session token issuer name
//	-session-duration session lifetime (e.g., "24h")
//	-password-hash-iterations PBKDF2 iteration count
//	-admin-email public contact address of the blog owner
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-log-level log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var sessionSignKey string
	var sessionIssuer string
	var sessionDuration time.Duration
	var passwordHashIterations int
	var adminEmail string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet("go-blog", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h)")
	fs.IntVar(&passwordHashIterations, "password-hash-iterations", 0, "PBKDF2 iterations for new passwords")
	fs.StringVar(&adminEmail, "admin-email", "", "Public contact address of the blog owner")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSignKey:         sessionSignKey,
			SessionIssuer:          sessionIssuer,
			SessionDuration:        sessionDuration,
			PasswordHashIterations: passwordHashIterations,
			AdminEmail:             adminEmail,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the address as host:port, or "" when it was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port" where host is empty, "localhost" or an IP address
// (IPv6 in brackets) and port is in 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q must be a number in range 1-65535", ErrInvalidAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %q is neither localhost nor an IP address", ErrInvalidAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
