// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package algorithms

import (
	"context"
	"math"
	"testing"

	"github.com/rasecfaria/FinalProject/internal/catalog"
)

// trainCF builds a collaborative model over three titles:
// A and B share an identical rating vector, C overlaps with neither.
func trainCF(t *testing.T) *CollaborativeModel {
	t.Helper()

	movies := []catalog.Movie{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
		{ID: 3, Title: "C"},
	}
	ratings := []catalog.Rating{
		{UserID: 10, MovieID: 1, Value: 4},
		{UserID: 20, MovieID: 1, Value: 2},
		{UserID: 10, MovieID: 2, Value: 4},
		{UserID: 20, MovieID: 2, Value: 2},
		{UserID: 30, MovieID: 3, Value: 5},
	}

	m := BuildRatingMatrix(movies, ratings)
	model, err := TrainCollaborative(context.Background(), m, 2)
	if err != nil {
		t.Fatalf("TrainCollaborative: %v", err)
	}
	return model
}

func TestCollaborativeIdenticalVectors(t *testing.T) {
	model := trainCF(t)

	got, ok := model.Similarity("A", "B")
	if !ok {
		t.Fatal("Similarity(A, B) not found")
	}
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("Similarity(A, B) = %v, want 1", got)
	}
}

func TestCollaborativeNoOverlap(t *testing.T) {
	model := trainCF(t)

	got, ok := model.Similarity("A", "C")
	if !ok {
		t.Fatal("Similarity(A, C) not found")
	}
	if got != 0 {
		t.Errorf("Similarity(A, C) = %v, want 0", got)
	}
}

func TestCollaborativeSymmetry(t *testing.T) {
	model := trainCF(t)

	ab, _ := model.Similarity("A", "B")
	ba, _ := model.Similarity("B", "A")
	if ab != ba {
		t.Errorf("Similarity(A, B) = %v, Similarity(B, A) = %v", ab, ba)
	}
}

func TestCollaborativeSimilarOrdering(t *testing.T) {
	model := trainCF(t)

	scored, ok := model.Similar("A")
	if !ok {
		t.Fatal("Similar(A) not found")
	}
	if len(scored) != 3 {
		t.Fatalf("Similar(A) returned %d entries, want 3", len(scored))
	}
	// The reference title leads with score 1.
	if scored[0].Title != "A" || scored[0].Score != 1 {
		t.Errorf("first entry = %+v, want {A 1}", scored[0])
	}
	if scored[1].Title != "B" {
		t.Errorf("second entry = %+v, want B", scored[1])
	}
	if scored[2].Title != "C" || scored[2].Score != 0 {
		t.Errorf("third entry = %+v, want {C 0}", scored[2])
	}
}

func TestCollaborativeUnknownTitle(t *testing.T) {
	model := trainCF(t)

	if _, ok := model.Similar("no such film"); ok {
		t.Error("Similar returned ok for an unknown title")
	}
	if _, ok := model.Similarity("A", "no such film"); ok {
		t.Error("Similarity returned ok for an unknown title")
	}
}

func TestCollaborativeCancelledContext(t *testing.T) {
	movies := []catalog.Movie{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	ratings := []catalog.Rating{
		{UserID: 1, MovieID: 1, Value: 3},
		{UserID: 1, MovieID: 2, Value: 4},
	}
	m := BuildRatingMatrix(movies, ratings)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := TrainCollaborative(ctx, m, 1); err == nil {
		t.Error("TrainCollaborative succeeded with a cancelled context")
	}
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	if got := cosineSimilarity([]float64{0, 0}, []float64{1, 2}); got != 0 {
		t.Errorf("cosineSimilarity with zero vector = %v, want 0", got)
	}
}
