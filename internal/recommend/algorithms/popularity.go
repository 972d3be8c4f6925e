// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package algorithms

import (
	"sort"

	"github.com/rasecfaria/FinalProject/internal/catalog"
)

// PopularTitle is one entry of the popularity ranking.
type PopularTitle struct {
	MovieID     int64  `json:"movieId"`
	Title       string `json:"title"`
	RatingCount int    `json:"ratingCount"`
}

// RankPopular ranks movies by how many ratings they received, most rated
// first. Ties break by title ascending so the ordering is deterministic.
// Movies without a single rating are omitted; ratings referencing movie
// IDs absent from the movies table are ignored.
func RankPopular(movies []catalog.Movie, ratings []catalog.Rating) []PopularTitle {
	counts := make(map[int64]int)
	for _, r := range ratings {
		counts[r.MovieID]++
	}

	ranked := make([]PopularTitle, 0, len(counts))
	for _, m := range movies {
		if count, ok := counts[m.ID]; ok {
			ranked = append(ranked, PopularTitle{
				MovieID:     m.ID,
				Title:       m.Title,
				RatingCount: count,
			})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].RatingCount != ranked[j].RatingCount {
			return ranked[i].RatingCount > ranked[j].RatingCount
		}
		return ranked[i].Title < ranked[j].Title
	})

	return ranked
}
