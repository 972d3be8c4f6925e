// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rasecfaria/FinalProject/internal/config"
)

// Router wires the handlers and middleware into an http.Handler.
type Router struct {
	handler *Handler
	cfg     config.APIConfig
}

// NewRouter creates a router for the given handler and API configuration.
func NewRouter(handler *Handler, cfg config.APIConfig) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(requestID())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsHandler(router.cfg))
	r.Use(requestLogging())

	// Health endpoint, no rate limit so monitors can poll freely.
	r.Get("/api/v1/health", router.handler.Health)

	// Catalog endpoints.
	r.Route("/api/v1/movies", func(r chi.Router) {
		r.Use(rateLimiter(router.cfg))
		r.Use(requestMetrics())

		r.Get("/popular", router.handler.Popular)
		r.Get("/search", router.handler.Search)
	})

	// Recommendation endpoints.
	r.Route("/api/v1/recommendations", func(r chi.Router) {
		r.Use(rateLimiter(router.cfg))
		r.Use(requestMetrics())

		r.Get("/collaborative", router.handler.RecommendCollaborative)
		r.Get("/content", router.handler.RecommendContent)
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
