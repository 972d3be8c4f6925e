// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

// Package catalog loads and indexes the raw CSV tables the recommendation
// engine is built from.
//
// Two tables are mandatory: movies and ratings. If either is missing or
// unparseable, Load fails and the caller cannot proceed. The tags and
// supplementary-details tables are optional: when they cannot be loaded
// the catalog is returned in degraded mode (ContentAvailable=false) and
// only collaborative recommendations are served.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rasecfaria/FinalProject/internal/config"
	"github.com/rasecfaria/FinalProject/internal/metrics"
)

// Load reads the catalog tables from the configured data directory.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func Load(cfg config.DataConfig, logger zerolog.Logger) (*Catalog, error) {
	logger = logger.With().Str("component", "catalog").Logger()
	start := time.Now()

	movies, err := loadMovies(filepath.Join(cfg.Dir, cfg.MoviesFile), logger)
	if err != nil {
		return nil, fmt.Errorf("load movies table: %w", err)
	}

	ratings, err := loadRatings(filepath.Join(cfg.Dir, cfg.RatingsFile), logger)
	if err != nil {
		return nil, fmt.Errorf("load ratings table: %w", err)
	}

	c := &Catalog{
		Movies:           movies,
		Ratings:          ratings,
		ContentAvailable: true,
	}

	// Optional tables degrade content recommendations instead of
	// failing the whole load.
	c.Tags, err = loadTags(filepath.Join(cfg.Dir, cfg.TagsFile), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("tags table unavailable, content recommendations disabled")
		c.ContentAvailable = false
	}

	c.Details, err = loadDetails(filepath.Join(cfg.Dir, cfg.DetailsFile), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("details table unavailable, content recommendations disabled")
		c.ContentAvailable = false
	}

	c.buildTitleIndex(logger)

	metrics.CatalogRows.WithLabelValues("movies").Set(float64(len(c.Movies)))
	metrics.CatalogRows.WithLabelValues("ratings").Set(float64(len(c.Ratings)))
	metrics.CatalogRows.WithLabelValues("tags").Set(float64(len(c.Tags)))
	metrics.CatalogRows.WithLabelValues("details").Set(float64(len(c.Details)))
	metrics.CatalogLoadDuration.Observe(time.Since(start).Seconds())

	logger.Info().
		Int("movies", len(c.Movies)).
		Int("ratings", len(c.Ratings)).
		Int("tags", len(c.Tags)).
		Int("details", len(c.Details)).
		Bool("content_available", c.ContentAvailable).
		Msg("catalog loaded")

	return c, nil
}

// buildTitleIndex maps titles to movie IDs and logs the duplicate-title
// count. Duplicates are collapsed silently by the scorers; the log entry
// is the only trace of the hazard.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func (c *Catalog) buildTitleIndex(logger zerolog.Logger) {
	c.titleIndex = make(map[string][]int64, len(c.Movies))
	duplicates := 0
	for _, m := range c.Movies {
		if len(c.titleIndex[m.Title]) > 0 {
			duplicates++
		}
		c.titleIndex[m.Title] = append(c.titleIndex[m.Title], m.ID)
	}

	if duplicates > 0 {
		logger.Warn().
			Int("duplicate_titles", duplicates).
			Msg("catalog contains titles mapping to multiple movie ids; their ratings will be merged")
	}
}

// header maps column names to positions for the first CSV record.
type header map[string]int

func (h header) column(record []string, name string) (string, error) {
	idx, ok := h[name]
	if !ok {
		return "", fmt.Errorf("missing column %q", name)
	}
	if idx >= len(record) {
		return "", fmt.Errorf("record too short for column %q", name)
	}
	return record[idx], nil
}

func (h header) require(names ...string) error {
	for _, name := range names {
		if _, ok := h[name]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
	}
	return nil
}

// readTable opens a CSV file and streams its records to fn, one record
// at a time, after validating the required columns exist in the header.
// Individual malformed records are delegated to fn; structural errors
// (unreadable file, no header, missing columns) abort the read.
func readTable(path string, required []string, fn func(h header, record []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // extra columns are ignored

	headRec, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	h := make(header, len(headRec))
	for i, name := range headRec {
		h[name] = i
	}
	if err := h.require(required...); err != nil {
		return err
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		fn(h, record)
	}
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func loadMovies(path string, logger zerolog.Logger) ([]Movie, error) {
	var movies []Movie
	skipped := 0

	err := readTable(path, []string{"movieId", "title", "genres"}, func(h header, record []string) {
		idText, _ := h.column(record, "movieId")
		title, _ := h.column(record, "title")
		genres, _ := h.column(record, "genres")

		id, err := strconv.ParseInt(idText, 10, 64)
		if err != nil || title == "" {
			skipped++
			return
		}
		movies = append(movies, Movie{ID: id, Title: title, Genres: genres})
	})
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Str("table", "movies").Msg("skipped malformed records")
		metrics.CatalogRowsSkipped.WithLabelValues("movies").Add(float64(skipped))
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("movies table %s contains no usable rows", path)
	}
	return movies, nil
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func loadRatings(path string, logger zerolog.Logger) ([]Rating, error) {
	var ratings []Rating
	skipped := 0

	// Only (userId, movieId, rating) are kept; the timestamp column is
	// dropped here and never reaches the engine.
	err := readTable(path, []string{"userId", "movieId", "rating"}, func(h header, record []string) {
		userText, _ := h.column(record, "userId")
		movieText, _ := h.column(record, "movieId")
		valueText, _ := h.column(record, "rating")

		userID, err1 := strconv.ParseInt(userText, 10, 64)
		movieID, err2 := strconv.ParseInt(movieText, 10, 64)
		value, err3 := strconv.ParseFloat(valueText, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			skipped++
			return
		}
		ratings = append(ratings, Rating{UserID: userID, MovieID: movieID, Value: value})
	})
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Str("table", "ratings").Msg("skipped malformed records")
		metrics.CatalogRowsSkipped.WithLabelValues("ratings").Add(float64(skipped))
	}
	if len(ratings) == 0 {
		return nil, fmt.Errorf("ratings table %s contains no usable rows", path)
	}
	return ratings, nil
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func loadTags(path string, logger zerolog.Logger) ([]Tag, error) {
	var tags []Tag
	skipped := 0

	err := readTable(path, []string{"movieId", "tag"}, func(h header, record []string) {
		movieText, _ := h.column(record, "movieId")
		text, _ := h.column(record, "tag")

		movieID, err := strconv.ParseInt(movieText, 10, 64)
		if err != nil {
			skipped++
			return
		}
		tags = append(tags, Tag{MovieID: movieID, Text: text})
	})
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Str("table", "tags").Msg("skipped malformed records")
		metrics.CatalogRowsSkipped.WithLabelValues("tags").Add(float64(skipped))
	}
	return tags, nil
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func loadDetails(path string, logger zerolog.Logger) ([]Detail, error) {
	var details []Detail
	skipped := 0

	err := readTable(path, []string{"Name"}, func(h header, record []string) {
		name, err := h.column(record, "Name")
		if err != nil || name == "" {
			skipped++
			return
		}
		// Description column is optional in the source data.
		description, _ := h.column(record, "Discription")
		details = append(details, Detail{Name: name, Description: description})
	})
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Str("table", "details").Msg("skipped malformed records")
		metrics.CatalogRowsSkipped.WithLabelValues("details").Add(float64(skipped))
	}
	return details, nil
}
