// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package web holds the server-rendered pages of the site as templ
// components.
//
// Components are pure: they take no request state, so rendering one twice
// produces identical bytes.
package web
