// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rasecfaria/FinalProject/internal/logging"
	"github.com/rasecfaria/FinalProject/internal/recommend"
)

// Handler holds the dependencies for the HTTP handlers.
type Handler struct {
	engine  *recommend.Engine
	version string
}

// NewHandler creates a handler backed by the recommendation engine.
func NewHandler(engine *recommend.Engine, version string) *Handler {
	return &Handler{engine: engine, version: version}
}

// healthResponse is the payload of GET /api/v1/health.
type healthResponse struct {
	Status           string `json:"status"`
	Version          string `json:"version"`
	ContentAvailable bool   `json:"content_available"`
}

// Health reports service liveness and whether content recommendations
// are being served.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(healthResponse{
		Status:           "ok",
		Version:          h.version,
		ContentAvailable: h.engine.ContentAvailable(),
	})
}

// Popular handles GET /api/v1/movies/popular?count=N.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	count, ok := parseCount(rw, r, "count")
	if !ok {
		return
	}

	titles := h.engine.ListPopular(count)
	rw.SuccessWithCount(titles, len(titles))
}

// Search handles GET /api/v1/movies/search?q=term.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	term := r.URL.Query().Get("q")
	if term == "" {
		rw.BadRequest("query parameter q is required")
		return
	}

	found := h.engine.Search(term)
	rw.SuccessWithCount(found, len(found))
}

// RecommendCollaborative handles
// GET /api/v1/recommendations/collaborative?title=T&count=N.
func (h *Handler) RecommendCollaborative(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	title, count, ok := parseRecommendQuery(rw, r)
	if !ok {
		return
	}

	scored, err := h.engine.RecommendCollaborative(r.Context(), title, count)
	if err != nil {
		h.writeRecommendError(rw, r, err)
		return
	}
	rw.SuccessWithCount(scored, len(scored))
}

// RecommendContent handles
// GET /api/v1/recommendations/content?title=T&count=N.
func (h *Handler) RecommendContent(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	title, count, ok := parseRecommendQuery(rw, r)
	if !ok {
		return
	}

	scored, err := h.engine.RecommendContent(r.Context(), title, count)
	if err != nil {
		h.writeRecommendError(rw, r, err)
		return
	}
	rw.SuccessWithCount(scored, len(scored))
}

// writeRecommendError maps engine errors to HTTP status codes.
func (h *Handler) writeRecommendError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrTitleNotFound):
		rw.NotFound("title not found")
	case errors.Is(err, recommend.ErrNoRecommendations):
		rw.NotFound("no recommendations available for this title")
	case errors.Is(err, recommend.ErrContentUnavailable):
		rw.ServiceUnavailable("content recommendations are unavailable: optional catalog tables did not load")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation query failed")
		rw.InternalError("recommendation query failed")
	}
}

// parseRecommendQuery extracts the title and optional count parameters.
func parseRecommendQuery(rw *ResponseWriter, r *http.Request) (title string, count int, ok bool) {
	title = r.URL.Query().Get("title")
	if title == "" {
		rw.BadRequest("query parameter title is required")
		return "", 0, false
	}

	count, ok = parseCount(rw, r, "count")
	if !ok {
		return "", 0, false
	}
	return title, count, true
}

// parseCount parses an optional non-negative integer query parameter.
// Absent means -1, which the engine maps to its configured default; an
// explicit 0 is a valid request for an empty list.
func parseCount(rw *ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return -1, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		rw.BadRequest("query parameter " + name + " must be a non-negative integer")
		return 0, false
	}
	return n, true
}
