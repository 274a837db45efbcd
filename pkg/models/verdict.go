package models

// MatchResult is one candidate duplicate surfaced by the engine.
type MatchResult struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Status               string   `json:"status"`
	SimilarityScore      float64  `json:"similarity_score"`
	SimilarityPercentage float64  `json:"similarity_percentage"`
	MatchingKeywords     []string `json:"matching_keywords"`
}

// SimilarityVerdict is the outcome of a duplicate check. It serializes
// directly into the caller's response payload.
type SimilarityVerdict struct {
	IsDuplicate     bool          `json:"is_duplicate"`
	SimilarityScore float64       `json:"similarity_score"`
	SimilarIssues   []MatchResult `json:"similar_issues"`
}

// EmptyVerdict is the canonical "no duplicates" result, returned both for
// an empty corpus and when model fitting fails.
func EmptyVerdict() SimilarityVerdict {
	return SimilarityVerdict{
		IsDuplicate:     false,
		SimilarityScore: 0.0,
		SimilarIssues:   []MatchResult{},
	}
}
