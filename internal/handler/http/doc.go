// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTML transport layer of the blog.
//
// It exposes route wiring, page handlers, and middleware. Request tracing,
// access logging, response compression, session resolution and the
// administrator guard are handled in this package before requests are
// delegated to the service layer.
package http
