// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

// Package algorithms implements the scoring algorithms behind the
// recommendation engine.
//
// # Algorithms
//
//   - Collaborative filtering: cosine similarity between title rating
//     vectors over the pivoted title x rater matrix.
//   - Content-based filtering: cosine similarity between TF-IDF vectors
//     of per-title genre profiles.
//   - Popularity: titles ranked by rating count, the baseline listing.
//
// Both similarity models precompute the full title-by-title matrix once;
// that build is the dominant cost (quadratic in catalog size) and queries
// afterwards are lookups into read-only state. Models are immutable after
// training and safe for concurrent queries without locking.
package algorithms
