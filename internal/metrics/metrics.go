// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Catalog loading (rows per table, skipped rows)
// - Model training (matrix builds are the expensive path)
// - Recommendation queries and their outcomes
// - API endpoint latency and throughput

var (
	// Catalog Metrics
	CatalogRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_rows",
			Help: "Number of rows loaded per catalog table",
		},
		[]string{"table"}, // "movies", "ratings", "tags", "details"
	)

	CatalogRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_rows_skipped_total",
			Help: "Total number of malformed rows skipped during catalog load",
		},
		[]string{"table"},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of the full catalog load in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Model Training Metrics
	ModelBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_build_duration_seconds",
			Help:    "Duration of recommendation model builds in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120}, // similarity matrices can take minutes
		},
		[]string{"model"}, // "collaborative", "content"
	)

	ModelBuildErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_build_errors_total",
			Help: "Total number of failed model builds",
		},
		[]string{"model"},
	)

	ModelTitles = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "model_titles",
			Help: "Number of titles covered by each trained model",
		},
		[]string{"model"},
	)

	// Recommendation Query Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation queries",
		},
		[]string{"method", "outcome"}, // method: "collaborative", "content", "popular", "search"; outcome: "ok", "not_found", "unavailable", "error"
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordCatalogTable records row counts for one loaded catalog table
func RecordCatalogTable(table string, rows, skipped int) {
	CatalogRows.WithLabelValues(table).Set(float64(rows))
	if skipped > 0 {
		CatalogRowsSkipped.WithLabelValues(table).Add(float64(skipped))
	}
}

// RecordModelBuild records a model build and its outcome
func RecordModelBuild(model string, duration time.Duration, titles int, err error) {
	ModelBuildDuration.WithLabelValues(model).Observe(duration.Seconds())
	if err != nil {
		ModelBuildErrors.WithLabelValues(model).Inc()
		return
	}
	ModelTitles.WithLabelValues(model).Set(float64(titles))
}

// RecordRecommendation records a recommendation query metric
func RecordRecommendation(method, outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(method, outcome).Inc()
	RecommendDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
