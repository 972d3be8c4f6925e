// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package algorithms

import (
	"context"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/rasecfaria/FinalProject/internal/catalog"
)

// Profile is the per-title content document assembled by joining the
// movies table with the optional details and tags tables.
type Profile struct {
	Title  string
	Genres string

	// Description and Tags are joined into the profile but do not yet
	// contribute to the document text. Folding them into Document is a
	// signaled extension point of the content profile, kept unused on
	// purpose.
	Description string
	Tags        []string
}

// Document returns the text the vectorizer consumes for this profile.
func (p Profile) Document() string {
	return p.Genres
}

// BuildCorpus left-joins movies to details by normalized title, then
// left-joins tags by movie ID (coerced to its text form on both sides of
// the join). Every movie keeps a profile even without any metadata
// match; the genre field alone is enough for a degenerate document.
func BuildCorpus(movies []catalog.Movie, details []catalog.Detail, tags []catalog.Tag) []Profile {
	detailByName := make(map[string]catalog.Detail, len(details))
	for _, d := range details {
		detailByName[catalog.NormalizeTitle(d.Name)] = d
	}

	tagsByID := make(map[string][]string, len(tags))
	for _, t := range tags {
		key := strconv.FormatInt(t.MovieID, 10)
		tagsByID[key] = append(tagsByID[key], t.Text)
	}

	corpus := make([]Profile, 0, len(movies))
	for _, m := range movies {
		p := Profile{
			Title:  m.Title,
			Genres: m.Genres,
		}
		if d, ok := detailByName[catalog.NormalizeTitle(m.Title)]; ok {
			p.Description = d.Description
		}
		p.Tags = tagsByID[strconv.FormatInt(m.ID, 10)]

		corpus = append(corpus, p)
	}

	return corpus
}

// tokenize lowercases the document and splits it on the genre-list
// delimiter and any other non-letter, non-digit boundary. No stemming or
// stop-word removal is applied.
func tokenize(document string) []string {
	return strings.FieldsFunc(strings.ToLower(document), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ContentModel answers "most similar titles to X" by cosine similarity
// between TF-IDF weighted term vectors of the title profiles. Like the
// collaborative model it precomputes the full similarity matrix once and
// is read-only afterwards.
type ContentModel struct {
	matrix *similarityMatrix
}

// TrainContent vectorizes every profile over the corpus vocabulary and
// builds the full cosine-similarity matrix. Profiles with no tokens get
// an all-zero vector: similarity 0 to everything, never an error.
func TrainContent(ctx context.Context, corpus []Profile, workers int) (*ContentModel, error) {
	titles := make([]string, len(corpus))
	docs := make([][]string, len(corpus))
	for i, p := range corpus {
		titles[i] = p.Title
		docs[i] = tokenize(p.Document())
	}

	vectors, norms := vectorizeTFIDF(docs)

	sim, err := pairwise(ctx, titles, workers, func(i, j int) float64 {
		return sparseCosineSimilarity(vectors[i], vectors[j], norms[i], norms[j])
	})
	if err != nil {
		return nil, err
	}
	return &ContentModel{matrix: sim}, nil
}

// vectorizeTFIDF builds one sparse term-weight vector per document with
// tf = termCount/docLen and idf = ln(N/df)+1, plus the vector norms.
func vectorizeTFIDF(docs [][]string) (vectors []map[string]float64, norms []float64) {
	// Document frequencies over the corpus vocabulary.
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; !ok {
				df[term]++
				seen[term] = struct{}{}
			}
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log(n/float64(count)) + 1.0
	}

	vectors = make([]map[string]float64, len(docs))
	norms = make([]float64, len(docs))
	for i, doc := range docs {
		tf := make(map[string]int, len(doc))
		for _, term := range doc {
			tf[term]++
		}

		vec := make(map[string]float64, len(tf))
		var norm float64
		for term, count := range tf {
			w := float64(count) / float64(len(doc)) * idf[term]
			vec[term] = w
			norm += w * w
		}
		vectors[i] = vec
		norms[i] = math.Sqrt(norm)
	}

	return vectors, norms
}

// Similar returns the similarity column for a title sorted descending,
// with the title itself first at 1.0. The second return is false when
// the title is not in the corpus. Duplicate corpus titles collapse to a
// single retrievable entry per title.
func (c *ContentModel) Similar(title string) ([]ScoredTitle, bool) {
	return c.matrix.similar(title)
}

// Similarity returns the pairwise similarity between two titles.
func (c *ContentModel) Similarity(a, b string) (float64, bool) {
	return c.matrix.similarity(a, b)
}

// Titles returns the number of documents in the model.
func (c *ContentModel) Titles() int {
	return len(c.matrix.titles)
}
