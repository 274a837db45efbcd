package detector

import (
	"sort"

	"github.com/hostelfix/dupcheck/internal/textproc"
	"github.com/hostelfix/dupcheck/internal/tfidf"
)

// ExtractKeywords returns the top keywords of a text, ranked by tf-idf
// weight over a single-document model with the vocabulary capped at topN.
// Keyword extraction is advisory: it never fails, degenerate input just
// yields nil.
func (d *Detector) ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		topN = d.opts.KeywordTopN
	}

	normalized := textproc.Normalize(text)
	if normalized == "" {
		return nil
	}

	vectorizer := tfidf.NewVectorizer(topN)
	if err := vectorizer.Fit([]string{normalized}); err != nil {
		return nil
	}
	vec := vectorizer.Transform(normalized)

	terms := make([]string, 0, len(vec))
	for term, w := range vec {
		if w > 0 {
			terms = append(terms, term)
		}
	}
	// Weight descending, alphabetical on ties.
	sort.Slice(terms, func(i, j int) bool {
		if vec[terms[i]] != vec[terms[j]] {
			return vec[terms[i]] > vec[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > topN {
		terms = terms[:topN]
	}
	return terms
}

// MatchingKeywords returns the keywords shared by two texts: the
// intersection of each text's independently extracted top keywords, in
// the first text's ranking order.
func (d *Detector) MatchingKeywords(a, b string) []string {
	keywordsA := d.ExtractKeywords(a, d.opts.KeywordTopN)
	keywordsB := d.ExtractKeywords(b, d.opts.KeywordTopN)
	if len(keywordsA) == 0 || len(keywordsB) == 0 {
		return nil
	}

	setB := make(map[string]struct{}, len(keywordsB))
	for _, k := range keywordsB {
		setB[k] = struct{}{}
	}

	var shared []string
	for _, k := range keywordsA {
		if _, ok := setB[k]; ok {
			shared = append(shared, k)
		}
	}
	return shared
}
