// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/homecare-jobs/internal/adapter"
	"github.com/MKhiriev/homecare-jobs/internal/client"
	"github.com/MKhiriev/homecare-jobs/internal/config"
	"github.com/MKhiriev/homecare-jobs/internal/handler"
	"github.com/MKhiriev/homecare-jobs/internal/logger"
	"github.com/MKhiriev/homecare-jobs/internal/metrics"
	"github.com/MKhiriev/homecare-jobs/internal/server"
	"github.com/MKhiriev/homecare-jobs/internal/store"
	"github.com/MKhiriev/homecare-jobs/internal/workers"
	"github.com/MKhiriev/homecare-jobs/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("homecare-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("backend_url", cfg.Backend.URL).
		Str("access_key", logger.Mask(cfg.Backend.AccessKey)).
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("operator_token", cfg.Server.OperatorToken != "").
		Str("dsn", cfg.Storage.DB.DSN).
		Dur("refresh_interval", cfg.Workers.RefreshInterval).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage, err := store.NewSQLiteSessionStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session storage")
	}
	defer storage.Close()

	backend := adapter.NewHTTPBackendAdapter(cfg.Backend, log)

	auth, err := client.New(cfg.Backend, storage, backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend client")
	}

	registry := metrics.NewRegistry()

	handlers, err := handler.NewHandlers(auth, registry, buildInfo, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(
		client.NewRefreshJob(auth, cfg.Workers.RefreshInterval, registry, log),
	)
	bg.Start(ctx)

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	bg.Stop()
	log.Info().Msg("application stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
