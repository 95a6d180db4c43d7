// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the service.
//
// It wires the chi router, the page and JSON API handlers, and the middleware
// chain: panic recovery, request tracing, access logging with request metrics,
// and response compression. Session operations are delegated to the shared
// backend client.
package http
