// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidCredentials is returned when a sign-in or sign-up request lacks
// an email or a password.
var ErrInvalidCredentials = errors.New("email and password are required")
