// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrNoSession is returned when no usable session is stored.
	ErrNoSession = errors.New("no session")

	// ErrMissingRefreshToken is returned when an expiring session cannot be
	// refreshed because it carries no refresh token.
	ErrMissingRefreshToken = errors.New("session has no refresh token")

	// ErrMissingStorage is wrapped in a *config.ConfigurationError when New is
	// given no session storage.
	ErrMissingStorage = errors.New("missing session storage")

	// ErrMissingAdapter is wrapped in a *config.ConfigurationError when New is
	// given no backend adapter.
	ErrMissingAdapter = errors.New("missing backend adapter")
)
