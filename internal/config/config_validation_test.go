// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *StructuredConfig)
		wantErr   error
		wantField string
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:      "missing access key",
			mutate:    func(cfg *StructuredConfig) { cfg.Backend.AccessKey = "" },
			wantErr:   ErrMissingAccessKey,
			wantField: "backend.access_key",
		},
		{
			name:      "blank access key",
			mutate:    func(cfg *StructuredConfig) { cfg.Backend.AccessKey = "   " },
			wantErr:   ErrMissingAccessKey,
			wantField: "backend.access_key",
		},
		{
			name:      "malformed access key",
			mutate:    func(cfg *StructuredConfig) { cfg.Backend.AccessKey = "not-a-jwt" },
			wantErr:   ErrMalformedAccessKey,
			wantField: "backend.access_key",
		},
		{
			name:      "empty endpoint",
			mutate:    func(cfg *StructuredConfig) { cfg.Backend.URL = "" },
			wantErr:   ErrInvalidEndpoint,
			wantField: "backend.url",
		},
		{
			name:      "endpoint without scheme",
			mutate:    func(cfg *StructuredConfig) { cfg.Backend.URL = "homecarejobbd.supabase.co" },
			wantErr:   ErrInvalidEndpoint,
			wantField: "backend.url",
		},
		{
			name:      "endpoint with unsupported scheme",
			mutate:    func(cfg *StructuredConfig) { cfg.Backend.URL = "ftp://homecarejobbd.supabase.co" },
			wantErr:   ErrInvalidEndpoint,
			wantField: "backend.url",
		},
		{
			name:      "empty dsn",
			mutate:    func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr:   ErrInvalidStorageConfigs,
			wantField: "storage.db.dsn",
		},
		{
			name:      "empty http address",
			mutate:    func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr:   ErrInvalidServerConfigs,
			wantField: "server.http_address",
		},
		{
			name:      "zero refresh interval",
			mutate:    func(cfg *StructuredConfig) { cfg.Workers.RefreshInterval = 0 },
			wantErr:   ErrInvalidWorkerConfigs,
			wantField: "workers.refresh_interval",
		},
		{
			name:      "negative refresh interval",
			mutate:    func(cfg *StructuredConfig) { cfg.Workers.RefreshInterval = -time.Second },
			wantErr:   ErrInvalidWorkerConfigs,
			wantField: "workers.refresh_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestConfigurationError_Error(t *testing.T) {
	err := NewConfigurationError("backend.access_key", ErrMissingAccessKey)

	assert.Equal(t, "configuration error: backend.access_key: missing backend access key", err.Error())
	assert.ErrorIs(t, err, ErrMissingAccessKey)
}
