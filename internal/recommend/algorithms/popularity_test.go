// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package algorithms

import (
	"testing"

	"github.com/rasecfaria/FinalProject/internal/catalog"
)

func TestRankPopular(t *testing.T) {
	movies := []catalog.Movie{
		{ID: 1, Title: "Once"},
		{ID: 2, Title: "Thrice"},
		{ID: 3, Title: "Twice"},
		{ID: 4, Title: "Never"},
	}
	ratings := []catalog.Rating{
		{UserID: 1, MovieID: 1, Value: 3},
		{UserID: 1, MovieID: 2, Value: 4},
		{UserID: 2, MovieID: 2, Value: 2},
		{UserID: 3, MovieID: 2, Value: 5},
		{UserID: 1, MovieID: 3, Value: 1},
		{UserID: 2, MovieID: 3, Value: 1},
		{UserID: 9, MovieID: 99, Value: 5}, // orphan rating
	}

	ranked := RankPopular(movies, ratings)

	if len(ranked) != 3 {
		t.Fatalf("RankPopular returned %d titles, want 3 (unrated omitted)", len(ranked))
	}
	want := []struct {
		title string
		count int
	}{
		{"Thrice", 3},
		{"Twice", 2},
		{"Once", 1},
	}
	for i, w := range want {
		if ranked[i].Title != w.title || ranked[i].RatingCount != w.count {
			t.Errorf("ranked[%d] = %+v, want {%s %d}", i, ranked[i], w.title, w.count)
		}
	}
}

func TestRankPopularTieBreaksByTitle(t *testing.T) {
	movies := []catalog.Movie{
		{ID: 1, Title: "Zebra"},
		{ID: 2, Title: "Aardvark"},
	}
	ratings := []catalog.Rating{
		{UserID: 1, MovieID: 1, Value: 3},
		{UserID: 1, MovieID: 2, Value: 3},
	}

	ranked := RankPopular(movies, ratings)

	if ranked[0].Title != "Aardvark" || ranked[1].Title != "Zebra" {
		t.Errorf("tied counts should sort by title, got %v", ranked)
	}
}

func TestRankPopularEmpty(t *testing.T) {
	if got := RankPopular(nil, nil); len(got) != 0 {
		t.Errorf("RankPopular(nil, nil) = %v, want empty", got)
	}
}
