// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rasecfaria/FinalProject/internal/catalog"
	"github.com/rasecfaria/FinalProject/internal/config"
	"github.com/rasecfaria/FinalProject/internal/recommend"
)

// testResponse mirrors APIResponse with a raw Data payload for decoding.
type testResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func testServer(t *testing.T, contentAvailable bool) *httptest.Server {
	t.Helper()

	c := &catalog.Catalog{
		Movies: []catalog.Movie{
			{ID: 1, Title: "Toy Story (1995)", Genres: "Adventure|Animation|Comedy"},
			{ID: 2, Title: "A Bug's Life (1998)", Genres: "Adventure|Animation|Comedy"},
			{ID: 3, Title: "Heat (1995)", Genres: "Action|Crime|Thriller"},
		},
		Ratings: []catalog.Rating{
			{UserID: 1, MovieID: 1, Value: 4},
			{UserID: 2, MovieID: 1, Value: 5},
			{UserID: 1, MovieID: 2, Value: 4},
			{UserID: 2, MovieID: 2, Value: 5},
			{UserID: 3, MovieID: 3, Value: 3},
		},
		Details: []catalog.Detail{
			{Name: "Toy Story (1995)", Description: "Toys come alive."},
		},
		ContentAvailable: contentAvailable,
	}

	engine := recommend.NewEngine(c, config.RecommendConfig{
		DefaultK:     10,
		MaxK:         100,
		PopularK:     20,
		BuildWorkers: 2,
	}, zerolog.Nop())

	router := NewRouter(NewHandler(engine, "test"), config.APIConfig{
		RateLimitReqs:   1000,
		RateLimitWindow: time.Minute,
		CORSOrigins:     []string{"*"},
	})

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, testResponse) {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	var body testResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	srv := testServer(t, true)

	resp, body := get(t, srv, "/api/v1/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !body.Success {
		t.Error("success = false")
	}

	var health struct {
		Status           string `json:"status"`
		ContentAvailable bool   `json:"content_available"`
	}
	if err := json.Unmarshal(body.Data, &health); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if health.Status != "ok" || !health.ContentAvailable {
		t.Errorf("health = %+v", health)
	}
}

func TestPopular(t *testing.T) {
	srv := testServer(t, true)

	resp, body := get(t, srv, "/api/v1/movies/popular")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var titles []struct {
		Title       string `json:"title"`
		RatingCount int    `json:"ratingCount"`
	}
	if err := json.Unmarshal(body.Data, &titles); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(titles) != 3 {
		t.Fatalf("got %d titles, want 3", len(titles))
	}
	if body.Meta == nil || body.Meta.Count != 3 {
		t.Errorf("meta = %+v, want count 3", body.Meta)
	}
}

func TestPopularWithCount(t *testing.T) {
	srv := testServer(t, true)

	_, body := get(t, srv, "/api/v1/movies/popular?count=1")

	var titles []json.RawMessage
	if err := json.Unmarshal(body.Data, &titles); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(titles) != 1 {
		t.Errorf("got %d titles, want 1", len(titles))
	}
}

func TestPopularBadCount(t *testing.T) {
	srv := testServer(t, true)

	resp, body := get(t, srv, "/api/v1/movies/popular?count=abc")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if body.Error == nil || body.Error.Code != ErrCodeBadRequest {
		t.Errorf("error = %+v", body.Error)
	}
}

func TestRecommendZeroCount(t *testing.T) {
	srv := testServer(t, true)

	// An explicit count=0 is a valid request for an empty list.
	resp, body := get(t, srv, "/api/v1/recommendations/collaborative?title=Toy+Story+(1995)&count=0")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body.Meta == nil || body.Meta.Count != 0 {
		t.Errorf("meta = %+v, want count 0", body.Meta)
	}
}

func TestSearch(t *testing.T) {
	srv := testServer(t, true)

	resp, body := get(t, srv, "/api/v1/movies/search?q=toy")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var movies []catalog.Movie
	if err := json.Unmarshal(body.Data, &movies); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Toy Story (1995)" {
		t.Errorf("search result = %v", movies)
	}
}

func TestSearchMissingTerm(t *testing.T) {
	srv := testServer(t, true)

	resp, _ := get(t, srv, "/api/v1/movies/search")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSearchNoMatches(t *testing.T) {
	srv := testServer(t, true)

	// An empty result is a 200, not an error.
	resp, body := get(t, srv, "/api/v1/movies/search?q=zzz-nonexistent")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if body.Meta == nil || body.Meta.Count != 0 {
		t.Errorf("meta = %+v, want count 0", body.Meta)
	}
}

func TestRecommendCollaborative(t *testing.T) {
	srv := testServer(t, true)

	resp, body := get(t, srv, "/api/v1/recommendations/collaborative?title=Toy+Story+(1995)")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var scored []struct {
		Title string  `json:"title"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(body.Data, &scored); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(scored) == 0 {
		t.Fatal("no recommendations returned")
	}
	// The reference title leads the ranking at similarity 1.0.
	if scored[0].Title != "Toy Story (1995)" || scored[0].Score != 1.0 {
		t.Errorf("scored[0] = %+v, want the reference at 1.0", scored[0])
	}
	if len(scored) < 2 || scored[1].Title != "A Bug's Life (1998)" {
		t.Errorf("scored = %+v, want A Bug's Life second", scored)
	}
}

func TestRecommendCollaborativeUnknownTitle(t *testing.T) {
	srv := testServer(t, true)

	resp, body := get(t, srv, "/api/v1/recommendations/collaborative?title=no+such+film")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if body.Error == nil || body.Error.Code != ErrCodeNotFound {
		t.Errorf("error = %+v", body.Error)
	}
}

func TestRecommendCollaborativeMissingTitle(t *testing.T) {
	srv := testServer(t, true)

	resp, _ := get(t, srv, "/api/v1/recommendations/collaborative")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRecommendContent(t *testing.T) {
	srv := testServer(t, true)

	resp, body := get(t, srv, "/api/v1/recommendations/content?title=Toy+Story+(1995)&count=1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var scored []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(body.Data, &scored); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(scored) != 1 || scored[0].Title != "Toy Story (1995)" {
		t.Errorf("recommendations = %v, want just the reference title", scored)
	}
}

func TestRecommendContentDegraded(t *testing.T) {
	srv := testServer(t, false)

	resp, body := get(t, srv, "/api/v1/recommendations/content?title=Toy+Story+(1995)")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
	if body.Error == nil || body.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("error = %+v", body.Error)
	}

	// Collaborative recommendations keep working in degraded mode.
	okResp, _ := get(t, srv, "/api/v1/recommendations/collaborative?title=Toy+Story+(1995)")
	if okResp.StatusCode != http.StatusOK {
		t.Errorf("collaborative status = %d, want 200", okResp.StatusCode)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := testServer(t, true)

	resp, _ := get(t, srv, "/api/v1/health")
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(t, true)

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRateLimit(t *testing.T) {
	c := &catalog.Catalog{
		Movies:           []catalog.Movie{{ID: 1, Title: "Solo", Genres: "Drama"}},
		Ratings:          []catalog.Rating{{UserID: 1, MovieID: 1, Value: 5}},
		ContentAvailable: true,
	}
	engine := recommend.NewEngine(c, config.RecommendConfig{
		DefaultK: 10, MaxK: 100, PopularK: 20, BuildWorkers: 1,
	}, zerolog.Nop())

	router := NewRouter(NewHandler(engine, "test"), config.APIConfig{
		RateLimitReqs:   2,
		RateLimitWindow: time.Minute,
		CORSOrigins:     []string{"*"},
	})
	srv := httptest.NewServer(router.Setup())
	defer srv.Close()

	var last int
	for i := 0; i < 4; i++ {
		resp, err := http.Get(srv.URL + "/api/v1/movies/popular")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		resp.Body.Close()
		last = resp.StatusCode
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("status after burst = %d, want 429", last)
	}
}
