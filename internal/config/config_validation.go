// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/homecare-jobs/internal/utils"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a *[ConfigurationError]
// naming the first offending field.
func (cfg *StructuredConfig) validate() error {
	if err := ValidateBackend(cfg.Backend); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return NewConfigurationError("storage.db.dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return NewConfigurationError("server.http_address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return NewConfigurationError("server.request_timeout", ErrInvalidServerConfigs)
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return NewConfigurationError("workers.refresh_interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

// ValidateBackend checks the settings the shared backend client is built
// from: the endpoint must be an absolute http(s) URL and the access key must
// be a well-formed JWT. The signature of the key is not verified; only the
// hosted service can do that.
func ValidateBackend(b Backend) error {
	if err := validateEndpoint(b.URL); err != nil {
		return err
	}

	key := strings.TrimSpace(b.AccessKey)
	if key == "" {
		return NewConfigurationError("backend.access_key", ErrMissingAccessKey)
	}
	if _, err := utils.ParseUnverifiedClaims(key); err != nil {
		return NewConfigurationError("backend.access_key", ErrMalformedAccessKey)
	}

	if b.RequestTimeout < 0 {
		return NewConfigurationError("backend.request_timeout", ErrInvalidEndpoint)
	}

	return nil
}

func validateEndpoint(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NewConfigurationError("backend.url", ErrInvalidEndpoint)
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return NewConfigurationError("backend.url", ErrInvalidEndpoint)
	}

	return nil
}
