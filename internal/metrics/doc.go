// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Overview

The package provides metrics for:
  - Catalog loading (row counts, skipped rows, load duration)
  - Model training (build duration, title coverage, failures)
  - Recommendation queries (throughput, outcome, latency)
  - HTTP request latency and throughput

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Catalog Metrics:
  - catalog_rows: Rows loaded per table (gauge)
    Labels: table (movies, ratings, tags, details)
  - catalog_rows_skipped_total: Malformed rows dropped during load (counter)
    Labels: table
  - catalog_load_duration_seconds: Full catalog load duration (histogram)

Model Metrics:
  - model_build_duration_seconds: Similarity model build time (histogram)
    Labels: model (collaborative, content)
    Buckets: 0.1 .. 120 (matrix builds scale with the square of the title count)
  - model_build_errors_total: Failed builds (counter)
    Labels: model
  - model_titles: Titles covered per trained model (gauge)
    Labels: model

Recommendation Metrics:
  - recommend_requests_total: Recommendation queries (counter)
    Labels: method (collaborative, content, popular, search),
    outcome (ok, not_found, unavailable, error)
  - recommend_duration_seconds: Query latency (histogram)
    Labels: method

API Metrics:
  - api_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Example PromQL queries:

	# Recommendation query rate by method
	rate(recommend_requests_total[5m])

	# p95 API latency
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket[5m]))

	# Share of lookups that miss the catalog
	sum(rate(recommend_requests_total{outcome="not_found"}[5m]))
	/
	sum(rate(recommend_requests_total[5m]))

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

To prevent high cardinality issues:

  - Endpoint labels are normalized (no query parameters)
  - Outcome labels are limited to predefined constants
  - Title and user labels are never recorded

# See Also

  - internal/api: HTTP middleware with metrics integration
  - internal/recommend: model build and query metrics recording
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
