// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the blog's HTTP server.
//
// It owns the server lifecycle: startup, waiting for SIGTERM, SIGINT or
// SIGQUIT, and a graceful shutdown bounded by the configured timeout.
package server
