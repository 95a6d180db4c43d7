// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/homecare-jobs/internal/client"
	"github.com/MKhiriev/homecare-jobs/internal/logger"
	"github.com/MKhiriev/homecare-jobs/internal/metrics"
	"github.com/MKhiriev/homecare-jobs/models"
)

// Handler holds the dependencies of the HTTP routes.
type Handler struct {
	auth      client.Auth
	metrics   *metrics.Registry
	buildInfo models.AppBuildInfo

	// operatorToken guards /api/auth; empty means loopback clients only.
	operatorToken string

	logger *logger.Logger
}

func NewHandler(auth client.Auth, registry *metrics.Registry, buildInfo models.AppBuildInfo, operatorToken string, logger *logger.Logger) *Handler {
	logger.Info().Bool("operator_token", operatorToken != "").Msg("http handler created")
	return &Handler{
		auth:          auth,
		metrics:       registry,
		buildInfo:     buildInfo,
		operatorToken: operatorToken,
		logger:        logger,
	}
}
