// Package tfidf implements the term-weighting model behind duplicate
// detection: unigram+bigram vocabulary over a fixed corpus, smoothed
// inverse document frequency, and L2-normalised weight vectors compared
// with cosine similarity.
//
// A Vectorizer is fit once over a combined corpus and discarded; the
// vocabulary is derived jointly with the query document, so a model is
// never reused across detection calls.
package tfidf

import (
	"errors"
	"math"
	"sort"

	"github.com/hostelfix/dupcheck/internal/textproc"
)

// ErrEmptyVocabulary is returned by Fit when no terms survive
// normalization and stop-word removal.
var ErrEmptyVocabulary = errors.New("tfidf: empty vocabulary")

// Vector is a sparse term-weight vector keyed by term.
type Vector map[string]float64

// Vectorizer builds term-weight vectors over a fixed corpus.
type Vectorizer struct {
	maxFeatures int

	vocabulary map[string]struct{}
	docFreq    map[string]int
	numDocs    int
}

// NewVectorizer creates a vectorizer whose vocabulary is capped at
// maxFeatures terms. A cap <= 0 means unbounded.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Fit builds the vocabulary and document frequencies from already
// normalized documents. When the vocabulary cap is exceeded, the most
// frequent terms across the corpus are kept, ties broken alphabetically.
func (v *Vectorizer) Fit(docs []string) error {
	termCounts := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		terms := textproc.Terms(textproc.Tokenize(doc))
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			termCounts[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	if len(termCounts) == 0 {
		return ErrEmptyVocabulary
	}

	vocabulary := make(map[string]struct{}, len(termCounts))
	if v.maxFeatures > 0 && len(termCounts) > v.maxFeatures {
		kept := make([]string, 0, len(termCounts))
		for term := range termCounts {
			kept = append(kept, term)
		}
		sort.Slice(kept, func(i, j int) bool {
			if termCounts[kept[i]] != termCounts[kept[j]] {
				return termCounts[kept[i]] > termCounts[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:v.maxFeatures]
		for _, term := range kept {
			vocabulary[term] = struct{}{}
		}
	} else {
		for term := range termCounts {
			vocabulary[term] = struct{}{}
		}
	}

	v.vocabulary = vocabulary
	v.docFreq = docFreq
	v.numDocs = len(docs)
	return nil
}

// Transform converts one normalized document into an L2-normalised
// tf-idf vector over the fitted vocabulary. Terms outside the vocabulary
// contribute nothing; a document with no in-vocabulary terms yields an
// empty (zero) vector.
func (v *Vectorizer) Transform(doc string) Vector {
	vec := make(Vector)
	for _, term := range textproc.Terms(textproc.Tokenize(doc)) {
		if _, ok := v.vocabulary[term]; !ok {
			continue
		}
		vec[term]++
	}

	var norm float64
	for term, count := range vec {
		w := count * v.idf(term)
		vec[term] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for term, w := range vec {
		vec[term] = w / norm
	}
	return vec
}

// idf is the smoothed inverse document frequency:
// ln((1 + n) / (1 + df)) + 1.
func (v *Vectorizer) idf(term string) float64 {
	df := v.docFreq[term]
	return math.Log(float64(1+v.numDocs)/float64(1+df)) + 1
}

// VocabularySize returns the number of terms in the fitted vocabulary.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// Cosine returns the cosine similarity of two sparse vectors, 0 when
// either vector has zero norm.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller vector for the dot product.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot, normA, normB float64
	for term, x := range a {
		normA += x * x
		if y, ok := b[term]; ok {
			dot += x * y
		}
	}
	for _, y := range b {
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Clamp float drift so callers can rely on [0, 1].
	if sim > 1 {
		sim = 1
	}
	if sim < 0 {
		sim = 0
	}
	return sim
}
