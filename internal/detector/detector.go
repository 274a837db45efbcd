// Package detector implements duplicate-issue detection: given a newly
// submitted issue and the corpus of currently-open issues, it scores the
// new issue against each candidate and returns the ones similar enough to
// be duplicates.
//
// Every call fits a fresh term-weighting model over its own corpus. The
// corpus changes with every new issue, so nothing is cached or shared
// between calls; a Detector is safe for concurrent use.
package detector

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/hostelfix/dupcheck/internal/textproc"
	"github.com/hostelfix/dupcheck/internal/tfidf"
	"github.com/hostelfix/dupcheck/pkg/models"
)

// Options tune a Detector. Zero values fall back to the deployment
// defaults below.
type Options struct {
	// SimilarityThreshold is the minimum cosine similarity for a
	// candidate to count as a duplicate.
	SimilarityThreshold float64
	// MaxSimilarToShow caps the number of matches in a verdict.
	MaxSimilarToShow int
	// MaxFeatures caps the fitted vocabulary size.
	MaxFeatures int
	// KeywordTopN is how many keywords ExtractKeywords returns by default.
	KeywordTopN int
	// MaxMatchingKeywords caps matching_keywords per match.
	MaxMatchingKeywords int
	// ExcerptLength is the description excerpt length in a match.
	ExcerptLength int
}

const (
	defaultThreshold           = 0.7
	defaultMaxSimilarToShow    = 5
	defaultMaxFeatures         = 5000
	defaultKeywordTopN         = 10
	defaultMaxMatchingKeywords = 5
	defaultExcerptLength       = 200
)

func (o Options) withDefaults() Options {
	if o.SimilarityThreshold == 0 {
		o.SimilarityThreshold = defaultThreshold
	}
	if o.MaxSimilarToShow == 0 {
		o.MaxSimilarToShow = defaultMaxSimilarToShow
	}
	if o.MaxFeatures == 0 {
		o.MaxFeatures = defaultMaxFeatures
	}
	if o.KeywordTopN == 0 {
		o.KeywordTopN = defaultKeywordTopN
	}
	if o.MaxMatchingKeywords == 0 {
		o.MaxMatchingKeywords = defaultMaxMatchingKeywords
	}
	if o.ExcerptLength == 0 {
		o.ExcerptLength = defaultExcerptLength
	}
	return o
}

// Detector runs duplicate checks. It holds configuration and a logger,
// never fitted model state.
type Detector struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a Detector with the given options and an injected logger.
func New(opts Options, logger zerolog.Logger) *Detector {
	return &Detector{
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// CheckIssue runs DetectDuplicates on an issue's title and description,
// joined with a single space.
func (d *Detector) CheckIssue(title, description string, existing []models.Document) models.SimilarityVerdict {
	return d.DetectDuplicates(textproc.JoinTitleBody(title, description), existing)
}

// DetectDuplicates scores newText against every existing document and
// returns a verdict with the candidates at or above the similarity
// threshold, best first.
//
// Detection is fail-open: when the model cannot be fit (for example every
// document normalizes to nothing), the failure is logged and the empty
// verdict returned. A duplicate check must never block issue creation.
func (d *Detector) DetectDuplicates(newText string, existing []models.Document) models.SimilarityVerdict {
	if len(existing) == 0 {
		return models.EmptyVerdict()
	}

	corpus := make([]string, 0, len(existing)+1)
	for i := range existing {
		corpus = append(corpus, textproc.Normalize(existing[i].CombinedText()))
	}
	// The query document goes last; it shares the joint vocabulary but is
	// excluded from the candidate set.
	corpus = append(corpus, textproc.Normalize(newText))

	vectorizer := tfidf.NewVectorizer(d.opts.MaxFeatures)
	if err := vectorizer.Fit(corpus); err != nil {
		d.logger.Warn().
			Err(err).
			Int("corpus_size", len(existing)).
			Msg("duplicate detection model fit failed, returning empty verdict")
		return models.EmptyVerdict()
	}

	queryVec := vectorizer.Transform(corpus[len(corpus)-1])

	type scored struct {
		index int
		score float64
	}
	var selected []scored
	for i := range existing {
		sim := tfidf.Cosine(queryVec, vectorizer.Transform(corpus[i]))
		if sim >= d.opts.SimilarityThreshold {
			selected = append(selected, scored{index: i, score: round(sim, 3)})
		}
	}

	if len(selected) == 0 {
		return models.EmptyVerdict()
	}

	// Stable: equal scores keep corpus order.
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].score > selected[j].score
	})
	if len(selected) > d.opts.MaxSimilarToShow {
		selected = selected[:d.opts.MaxSimilarToShow]
	}

	matches := make([]models.MatchResult, 0, len(selected))
	maxScore := 0.0
	for _, s := range selected {
		doc := existing[s.index]
		if s.score > maxScore {
			maxScore = s.score
		}

		keywords := d.MatchingKeywords(newText, doc.CombinedText())
		if len(keywords) > d.opts.MaxMatchingKeywords {
			keywords = keywords[:d.opts.MaxMatchingKeywords]
		}
		if keywords == nil {
			// Serializes as [] rather than null.
			keywords = []string{}
		}

		matches = append(matches, models.MatchResult{
			ID:                   doc.ID,
			Title:                doc.Title,
			Description:          models.Excerpt(doc.Description, d.opts.ExcerptLength),
			Status:               doc.Status,
			SimilarityScore:      round(s.score, 3),
			SimilarityPercentage: round(s.score*100, 1),
			MatchingKeywords:     keywords,
		})
	}

	return models.SimilarityVerdict{
		IsDuplicate:     true,
		SimilarityScore: round(maxScore, 3),
		SimilarIssues:   matches,
	}
}

// round rounds x to the given number of decimal places.
func round(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
