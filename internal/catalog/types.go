// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package catalog

import "strings"

// Movie is one row of the movies table.
type Movie struct {
	// ID is the stable movie identifier.
	ID int64 `json:"movieId"`

	// Title is the display key. Titles are expected to be unique within
	// the catalog; duplicates are a known data hazard that downstream
	// lookups collapse silently.
	Title string `json:"title"`

	// Genres is a pipe-delimited genre list, e.g. "Comedy|Romance".
	Genres string `json:"genres"`
}

// Rating is one row of the ratings table. Timestamps and any other
// provenance columns are dropped at load time.
type Rating struct {
	UserID  int64   `json:"userId"`
	MovieID int64   `json:"movieId"`
	Value   float64 `json:"rating"`
}

// Tag is one row of the optional tags table.
type Tag struct {
	MovieID int64  `json:"movieId"`
	Text    string `json:"tag"`
}

// Detail is one row of the optional supplementary attributes table,
// joined to movies by normalized title.
type Detail struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog holds the loaded tables. It is immutable after Load returns;
// concurrent readers need no locking.
type Catalog struct {
	Movies  []Movie
	Ratings []Rating
	Tags    []Tag
	Details []Detail

	// ContentAvailable is false when the optional tables failed to
	// load. Content-based recommendations are unavailable in that case.
	ContentAvailable bool

	// titleIndex maps each title to the movie IDs carrying it. More
	// than one ID per title marks an ambiguous key.
	titleIndex map[string][]int64
}

// MovieIDs returns the movie IDs registered for a title, or nil when the
// title is unknown. Multiple IDs indicate a duplicate-title hazard.
func (c *Catalog) MovieIDs(title string) []int64 {
	return c.titleIndex[title]
}

// HasTitle reports whether a title exists in the catalog.
func (c *Catalog) HasTitle(title string) bool {
	_, ok := c.titleIndex[title]
	return ok
}

// Search returns all movies whose title contains the term,
// case-insensitively. An empty result is a valid outcome, not an error.
func (c *Catalog) Search(term string) []Movie {
	needle := strings.ToLower(term)
	var out []Movie
	for _, m := range c.Movies {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			out = append(out, m)
		}
	}
	return out
}

// NormalizeTitle produces the join key used to match supplementary
// attributes against movie titles.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
