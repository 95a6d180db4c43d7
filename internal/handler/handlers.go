// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/homecare-jobs/internal/client"
	"github.com/MKhiriev/homecare-jobs/internal/config"
	"github.com/MKhiriev/homecare-jobs/internal/handler/http"
	"github.com/MKhiriev/homecare-jobs/internal/logger"
	"github.com/MKhiriev/homecare-jobs/internal/metrics"
	"github.com/MKhiriev/homecare-jobs/models"
)

// Handlers groups the transport handlers the server exposes.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler when an HTTP address is configured.
// It returns errNoHandlersAreCreated otherwise.
func NewHandlers(auth client.Auth, registry *metrics.Registry, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(auth, registry, buildInfo, cfg.OperatorToken, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
