// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package algorithms

import (
	"sort"

	"github.com/rasecfaria/FinalProject/internal/catalog"
)

// RatingMatrix is the dense title x rater pivot of the ratings table.
// Cells hold the rating value, or 0 when the rater never rated the title.
// The zero is a sentinel for "no rating", not a rating of zero; the
// cosine metric tolerates all-zero rows by scoring them 0 against
// everything.
type RatingMatrix struct {
	// Titles is the row order (sorted for determinism).
	Titles []string

	// Users is the column order (sorted rater IDs).
	Users []int64

	// Rows holds one dense rating vector per title, indexed like Titles.
	Rows [][]float64

	rowIndex map[string]int
}

// BuildRatingMatrix inner-joins ratings to movies on movie ID and pivots
// the result into a title x rater matrix. Only titles with at least one
// rating get a row. When two movie IDs share a title their ratings merge
// into a single row; cells rated through more than one ID average the
// colliding values, matching a pivot-table aggregation.
func BuildRatingMatrix(movies []catalog.Movie, ratings []catalog.Rating) *RatingMatrix {
	titleByID := make(map[int64]string, len(movies))
	for _, m := range movies {
		titleByID[m.ID] = m.Title
	}

	type cell struct {
		sum   float64
		count int
	}
	cells := make(map[string]map[int64]cell)
	userSet := make(map[int64]struct{})

	for _, r := range ratings {
		title, ok := titleByID[r.MovieID]
		if !ok {
			continue // rating for a movie missing from the movies table
		}

		row, ok := cells[title]
		if !ok {
			row = make(map[int64]cell)
			cells[title] = row
		}
		c := row[r.UserID]
		c.sum += r.Value
		c.count++
		row[r.UserID] = c

		userSet[r.UserID] = struct{}{}
	}

	titles := make([]string, 0, len(cells))
	for title := range cells {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	users := make([]int64, 0, len(userSet))
	for u := range userSet {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })

	colIndex := make(map[int64]int, len(users))
	for i, u := range users {
		colIndex[u] = i
	}

	rows := make([][]float64, len(titles))
	rowIndex := make(map[string]int, len(titles))
	for i, title := range titles {
		rowIndex[title] = i
		row := make([]float64, len(users))
		for userID, c := range cells[title] {
			row[colIndex[userID]] = c.sum / float64(c.count)
		}
		rows[i] = row
	}

	return &RatingMatrix{
		Titles:   titles,
		Users:    users,
		Rows:     rows,
		rowIndex: rowIndex,
	}
}

// Row returns the rating vector for a title.
func (m *RatingMatrix) Row(title string) ([]float64, bool) {
	i, ok := m.rowIndex[title]
	if !ok {
		return nil, false
	}
	return m.Rows[i], true
}

// HasTitle reports whether the matrix has a row for the title.
func (m *RatingMatrix) HasTitle(title string) bool {
	_, ok := m.rowIndex[title]
	return ok
}

// Shape returns (title count, rater count).
func (m *RatingMatrix) Shape() (rows, cols int) {
	return len(m.Titles), len(m.Users)
}
