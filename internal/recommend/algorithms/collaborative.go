// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package algorithms

import "context"

// CollaborativeModel answers "most similar titles to X" from the rating
// matrix. Similarity between two titles is the cosine of their rating
// vectors across all raters: titles rated highly by the same raters come
// out similar. No mean-centering and no shrinkage are applied, so titles
// with little rating overlap legitimately score near 0 (the cold-start
// behavior of plain item-item cosine).
//
// The full title-by-title matrix is computed once at training time;
// queries afterwards are read-only lookups safe for concurrent use.
type CollaborativeModel struct {
	matrix *similarityMatrix
}

// TrainCollaborative builds the full cosine-similarity matrix over the
// rating matrix rows. This is O(titles^2 x raters) and the dominant cost
// of the collaborative path; workers rows are filled in parallel.
func TrainCollaborative(ctx context.Context, m *RatingMatrix, workers int) (*CollaborativeModel, error) {
	sim, err := pairwise(ctx, m.Titles, workers, func(i, j int) float64 {
		return cosineSimilarity(m.Rows[i], m.Rows[j])
	})
	if err != nil {
		return nil, err
	}
	return &CollaborativeModel{matrix: sim}, nil
}

// Similar returns the similarity column for a title sorted descending,
// with the title itself first at 1.0. The second return is false when
// the title has no row in the rating matrix.
func (c *CollaborativeModel) Similar(title string) ([]ScoredTitle, bool) {
	return c.matrix.similar(title)
}

// Similarity returns the pairwise similarity between two titles.
func (c *CollaborativeModel) Similarity(a, b string) (float64, bool) {
	return c.matrix.similarity(a, b)
}

// Titles returns the number of titles in the model.
func (c *CollaborativeModel) Titles() int {
	return len(c.matrix.titles)
}
