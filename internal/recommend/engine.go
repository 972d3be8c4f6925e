// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

// Package recommend exposes the recommendation engine: popularity
// listings, catalog search, and the two similarity scorers built by
// internal/recommend/algorithms.
//
// Models are expensive to build (the collaborative similarity matrix is
// quadratic in the number of titles), so the engine builds each model at
// most once and serves every subsequent query from the cached model.
// Concurrent first requests are collapsed with singleflight.
package recommend

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/rasecfaria/FinalProject/internal/catalog"
	"github.com/rasecfaria/FinalProject/internal/config"
	"github.com/rasecfaria/FinalProject/internal/metrics"
	"github.com/rasecfaria/FinalProject/internal/recommend/algorithms"
)

// Engine answers recommendation queries over a loaded catalog.
// All methods are safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	cfg     config.RecommendConfig
	logger  zerolog.Logger

	popular []algorithms.PopularTitle

	group singleflight.Group

	mu      sync.RWMutex
	collab  *algorithms.CollaborativeModel
	content *algorithms.ContentModel
}

// NewEngine wraps a loaded catalog. The popularity ranking is computed
// eagerly (it is a single counting pass); the similarity models are
// built lazily on first use.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewEngine(c *catalog.Catalog, cfg config.RecommendConfig, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: c,
		cfg:     cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		popular: algorithms.RankPopular(c.Movies, c.Ratings),
	}
}

// ContentAvailable reports whether content recommendations can be
// served, which requires the optional catalog tables.
func (e *Engine) ContentAvailable() bool {
	return e.catalog.ContentAvailable
}

// ListPopular returns the n most rated titles. n < 0 falls back to the
// configured listing length; n beyond the catalog returns everything.
func (e *Engine) ListPopular(n int) []algorithms.PopularTitle {
	start := time.Now()
	if n < 0 {
		n = e.cfg.PopularK
	}
	if n > len(e.popular) {
		n = len(e.popular)
	}

	out := make([]algorithms.PopularTitle, n)
	copy(out, e.popular[:n])
	metrics.RecordRecommendation("popular", "ok", time.Since(start))
	return out
}

// Search returns catalog movies whose title contains term,
// case-insensitively. An empty result is not an error.
func (e *Engine) Search(term string) []catalog.Movie {
	start := time.Now()
	found := e.catalog.Search(term)

	outcome := "ok"
	if len(found) == 0 {
		outcome = "not_found"
	}
	metrics.RecordRecommendation("search", outcome, time.Since(start))
	return found
}

// RecommendCollaborative returns the n titles most similar to title by
// shared rating behavior. The reference title leads the result at
// similarity 1.0, matching the ranking the scorer produces.
func (e *Engine) RecommendCollaborative(ctx context.Context, title string, n int) ([]algorithms.ScoredTitle, error) {
	start := time.Now()

	model, err := e.collaborativeModel(ctx)
	if err != nil {
		metrics.RecordRecommendation("collaborative", "error", time.Since(start))
		return nil, err
	}

	scored, ok := model.Similar(title)
	if !ok {
		metrics.RecordRecommendation("collaborative", "not_found", time.Since(start))
		return nil, ErrTitleNotFound
	}

	out, err := e.topN(scored, n)
	if err != nil {
		metrics.RecordRecommendation("collaborative", "error", time.Since(start))
		return nil, err
	}
	metrics.RecordRecommendation("collaborative", "ok", time.Since(start))
	return out, nil
}

// RecommendContent returns the n titles most similar to title by genre
// profile. In degraded mode it fails with ErrContentUnavailable.
func (e *Engine) RecommendContent(ctx context.Context, title string, n int) ([]algorithms.ScoredTitle, error) {
	start := time.Now()

	if !e.catalog.ContentAvailable {
		metrics.RecordRecommendation("content", "unavailable", time.Since(start))
		return nil, ErrContentUnavailable
	}

	model, err := e.contentModel(ctx)
	if err != nil {
		metrics.RecordRecommendation("content", "error", time.Since(start))
		return nil, err
	}

	scored, ok := model.Similar(title)
	if !ok {
		metrics.RecordRecommendation("content", "not_found", time.Since(start))
		return nil, ErrTitleNotFound
	}

	out, err := e.topN(scored, n)
	if err != nil {
		metrics.RecordRecommendation("content", "error", time.Since(start))
		return nil, err
	}
	metrics.RecordRecommendation("content", "ok", time.Since(start))
	return out, nil
}

// Warm builds both similarity models ahead of the first query. Content
// is skipped in degraded mode. Used at startup so the first request
// does not pay the build cost.
func (e *Engine) Warm(ctx context.Context) error {
	if _, err := e.collaborativeModel(ctx); err != nil {
		return err
	}
	if !e.catalog.ContentAvailable {
		return nil
	}
	_, err := e.contentModel(ctx)
	return err
}

// topN truncates the ranked result to n scored titles. The reference
// title itself leads the ranking at similarity 1.0 and counts toward n.
// n == 0 is a valid request for an empty list; n < 0 means the caller
// did not specify a count and gets the configured default. n is capped
// by the configured maximum.
func (e *Engine) topN(scored []algorithms.ScoredTitle, n int) ([]algorithms.ScoredTitle, error) {
	if len(scored) == 0 {
		return nil, ErrNoRecommendations
	}
	if n == 0 {
		return []algorithms.ScoredTitle{}, nil
	}

	if n < 0 {
		n = e.cfg.DefaultK
	}
	if e.cfg.MaxK > 0 && n > e.cfg.MaxK {
		n = e.cfg.MaxK
	}
	if n > len(scored) {
		n = len(scored)
	}

	out := make([]algorithms.ScoredTitle, n)
	copy(out, scored[:n])
	return out, nil
}

func (e *Engine) collaborativeModel(ctx context.Context) (*algorithms.CollaborativeModel, error) {
	e.mu.RLock()
	model := e.collab
	e.mu.RUnlock()
	if model != nil {
		return model, nil
	}

	v, err, _ := e.group.Do("collaborative", func() (any, error) {
		e.mu.RLock()
		model := e.collab
		e.mu.RUnlock()
		if model != nil {
			return model, nil
		}

		start := time.Now()
		matrix := algorithms.BuildRatingMatrix(e.catalog.Movies, e.catalog.Ratings)
		model, buildErr := algorithms.TrainCollaborative(ctx, matrix, e.cfg.BuildWorkers)
		if buildErr != nil {
			metrics.RecordModelBuild("collaborative", time.Since(start), 0, buildErr)
			return nil, buildErr
		}
		metrics.RecordModelBuild("collaborative", time.Since(start), model.Titles(), nil)

		rows, cols := matrix.Shape()
		e.logger.Info().
			Int("titles", rows).
			Int("users", cols).
			Dur("elapsed", time.Since(start)).
			Msg("collaborative model built")

		e.mu.Lock()
		e.collab = model
		e.mu.Unlock()
		return model, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*algorithms.CollaborativeModel), nil
}

func (e *Engine) contentModel(ctx context.Context) (*algorithms.ContentModel, error) {
	e.mu.RLock()
	model := e.content
	e.mu.RUnlock()
	if model != nil {
		return model, nil
	}

	v, err, _ := e.group.Do("content", func() (any, error) {
		e.mu.RLock()
		model := e.content
		e.mu.RUnlock()
		if model != nil {
			return model, nil
		}

		start := time.Now()
		corpus := algorithms.BuildCorpus(e.catalog.Movies, e.catalog.Details, e.catalog.Tags)
		model, buildErr := algorithms.TrainContent(ctx, corpus, e.cfg.BuildWorkers)
		if buildErr != nil {
			metrics.RecordModelBuild("content", time.Since(start), 0, buildErr)
			return nil, buildErr
		}
		metrics.RecordModelBuild("content", time.Since(start), model.Titles(), nil)

		e.logger.Info().
			Int("titles", model.Titles()).
			Dur("elapsed", time.Since(start)).
			Msg("content model built")

		e.mu.Lock()
		e.content = model
		e.mu.Unlock()
		return model, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*algorithms.ContentModel), nil
}
