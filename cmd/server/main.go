// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

// Package main is the entry point for the recommendation server.
//
// The server loads a MovieLens-style dataset from CSV files, builds
// collaborative and content-based recommendation models, and serves
// them over a REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Catalog: Parse movies, ratings and optional tags/details CSVs
//  3. Engine: Rank popular titles and optionally pre-build similarity models
//  4. HTTP Server: REST API with Chi routing and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (DATA_DIR, SERVER_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// # Degraded Mode
//
// The movies and ratings tables are mandatory; the server refuses to start
// without them. Tags and details are optional: when either is missing the
// content-based recommender is unavailable and its endpoint returns 503,
// while collaborative filtering, popularity and search keep working.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//
// # Example Usage
//
// Default dataset directory (./ml-latest-small):
//
//	./recommender
//
// Custom dataset and port:
//
//	export DATA_DIR=/data/ml-latest
//	export SERVER_PORT=9090
//	./recommender
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rasecfaria/FinalProject/internal/api"
	"github.com/rasecfaria/FinalProject/internal/catalog"
	"github.com/rasecfaria/FinalProject/internal/config"
	"github.com/rasecfaria/FinalProject/internal/logging"
	"github.com/rasecfaria/FinalProject/internal/metrics"
	"github.com/rasecfaria/FinalProject/internal/recommend"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("data_dir", cfg.Data.Dir).
		Msg("Starting recommendation server")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
	startTime := time.Now()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			metrics.AppUptime.Set(time.Since(startTime).Seconds())
		}
	}()

	// Load the catalog. Missing mandatory tables are fatal; missing optional
	// tables only disable the content-based recommender.
	cat, err := catalog.Load(cfg.Data, logging.WithComponent("catalog"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	engine := recommend.NewEngine(cat, cfg.Recommend, logging.WithComponent("recommend"))
	if !engine.ContentAvailable() {
		logging.Warn().Msg("Optional tables missing - content-based recommendations disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Pre-build the similarity models so the first request does not pay the
	// build cost. Failures here are not fatal: models are rebuilt lazily on
	// the first request that needs them.
	go func() {
		if err := engine.Warm(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Warn().Err(err).Msg("Model warm-up failed, models will build on first request")
		}
	}()

	handler := api.NewHandler(engine, version)
	router := api.NewRouter(handler, cfg.API)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	serverErrCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serverErrCh <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	// Cancel any in-flight model builds before draining connections
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
