// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Validation errors wrapped by [ConfigurationError]. Callers can match them
// with [errors.Is].
var (
	// ErrMissingAccessKey indicates that no backend access key was provided
	// by any configuration source.
	ErrMissingAccessKey = errors.New("missing backend access key")
	// ErrMalformedAccessKey indicates that the backend access key is present
	// but is not a well-formed JWT.
	ErrMalformedAccessKey = errors.New("malformed backend access key")
	// ErrInvalidEndpoint indicates an empty or unparsable backend URL.
	ErrInvalidEndpoint = errors.New("invalid backend endpoint")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid session storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// ConfigurationError reports a configuration value that is missing or
// invalid. It is surfaced at startup and is fatal to initialization.
type ConfigurationError struct {
	// Field is the dotted name of the offending setting (e.g. "backend.access_key").
	Field string
	// Err is one of the sentinel errors of this package.
	Err error
}

// NewConfigurationError wraps err for field.
func NewConfigurationError(field string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Err: err}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
