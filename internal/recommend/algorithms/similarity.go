// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package algorithms

import (
	"context"
	"math"
	"runtime"
	"sort"
	"sync"
)

// ScoredTitle pairs a title with its similarity score.
type ScoredTitle struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// cosineSimilarity computes cosine similarity between two dense vectors.
// Returns 0 when either vector has zero norm.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// sparseCosineSimilarity computes cosine similarity between two sparse
// term-weight vectors given their precomputed norms.
func sparseCosineSimilarity(a, b map[string]float64, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}

	// Iterate the smaller map.
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}

	return dot / (normA * normB)
}

// similarityMatrix holds a precomputed symmetric title-by-title
// similarity matrix with the diagonal pinned to 1.0, so a title's
// self-similarity is always 1.0 even when its vector carries no signal.
type similarityMatrix struct {
	titles []string
	index  map[string]int
	sim    [][]float64
}

// pairwise fills the matrix using simFn for off-diagonal pairs, chunking
// rows across workers. Only the upper triangle is computed; the mirror
// half is copied afterwards.
func pairwise(ctx context.Context, titles []string, workers int, simFn func(i, j int) float64) (*similarityMatrix, error) {
	n := len(titles)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	index := make(map[string]int, n)
	sim := make([][]float64, n)
	for i, title := range titles {
		// First occurrence wins for duplicate titles.
		if _, ok := index[title]; !ok {
			index[title] = i
		}
		sim[i] = make([]float64, n)
		sim[i][i] = 1.0
	}

	if n == 0 {
		return &similarityMatrix{titles: titles, index: index, sim: sim}, nil
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if contextCancelled(ctx) {
					return
				}
				for j := i + 1; j < n; j++ {
					sim[i][j] = simFn(i, j)
				}
			}
		}(start, end)
	}

	wg.Wait()

	if contextCancelled(ctx) {
		return nil, ctx.Err()
	}

	// Mirror the upper triangle; similarity is symmetric.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim[j][i] = sim[i][j]
		}
	}

	return &similarityMatrix{titles: titles, index: index, sim: sim}, nil
}

// similar returns the similarity column for a title, sorted descending
// with the reference title pinned first. Entries are deduplicated by
// title (first row wins), so duplicate corpus titles collapse to one
// retrievable entry. The second return is false when the title is not in
// the matrix.
func (m *similarityMatrix) similar(title string) ([]ScoredTitle, bool) {
	ref, ok := m.index[title]
	if !ok {
		return nil, false
	}

	seen := make(map[string]struct{}, len(m.titles))
	entries := make([]ScoredTitle, 0, len(m.titles))
	for i, other := range m.titles {
		if i == ref {
			continue
		}
		if _, dup := seen[other]; dup || other == title {
			continue
		}
		seen[other] = struct{}{}
		entries = append(entries, ScoredTitle{Title: other, Score: m.sim[ref][i]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Title < entries[j].Title
	})

	// The reference itself always ranks first at 1.0.
	out := make([]ScoredTitle, 0, len(entries)+1)
	out = append(out, ScoredTitle{Title: title, Score: m.sim[ref][ref]})
	out = append(out, entries...)

	return out, true
}

// similarity returns the similarity between two titles.
func (m *similarityMatrix) similarity(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.sim[i][j], true
}

// contextCancelled checks if the context has been canceled.
func contextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
