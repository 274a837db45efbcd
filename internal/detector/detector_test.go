package detector

import (
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hostelfix/dupcheck/pkg/models"
)

func newTestDetector(opts Options) *Detector {
	return New(opts, zerolog.Nop())
}

func TestDetectDuplicates_EmptyCorpus(t *testing.T) {
	d := newTestDetector(Options{})

	verdict := d.DetectDuplicates("Leaking tap in bathroom", nil)

	if verdict.IsDuplicate {
		t.Errorf("IsDuplicate = true, want false")
	}
	if verdict.SimilarityScore != 0.0 {
		t.Errorf("SimilarityScore = %v, want 0.0", verdict.SimilarityScore)
	}
	if len(verdict.SimilarIssues) != 0 {
		t.Errorf("SimilarIssues = %v, want empty", verdict.SimilarIssues)
	}
}

func TestDetectDuplicates_ExactDuplicate(t *testing.T) {
	existing := []models.Document{
		{
			ID:          "issue-1",
			Title:       "Leaking tap in bathroom",
			Description: "The tap in the bathroom is leaking continuously...",
			Status:      models.StatusReported,
		},
	}
	d := newTestDetector(Options{})

	verdict := d.DetectDuplicates(
		"Leaking tap in bathroom The tap in the bathroom is leaking continuously",
		existing,
	)

	if !verdict.IsDuplicate {
		t.Fatalf("IsDuplicate = false, want true")
	}
	if verdict.SimilarityScore < 0.7 {
		t.Errorf("SimilarityScore = %v, want >= 0.7", verdict.SimilarityScore)
	}
	if len(verdict.SimilarIssues) != 1 {
		t.Fatalf("len(SimilarIssues) = %d, want 1", len(verdict.SimilarIssues))
	}

	match := verdict.SimilarIssues[0]
	if match.ID != "issue-1" {
		t.Errorf("match.ID = %q, want issue-1", match.ID)
	}
	if match.Status != models.StatusReported {
		t.Errorf("match.Status = %q, want %q", match.Status, models.StatusReported)
	}
	// Identical normalized text scores 1.0.
	if match.SimilarityScore != 1.0 {
		t.Errorf("match.SimilarityScore = %v, want 1.0", match.SimilarityScore)
	}
	if match.SimilarityPercentage != 100.0 {
		t.Errorf("match.SimilarityPercentage = %v, want 100.0", match.SimilarityPercentage)
	}
	if !strings.HasSuffix(match.Description, "...") {
		t.Errorf("match.Description missing excerpt suffix: %q", match.Description)
	}
	if len(match.MatchingKeywords) == 0 {
		t.Errorf("expected matching keywords for identical texts")
	}
	if len(match.MatchingKeywords) > 5 {
		t.Errorf("len(MatchingKeywords) = %d, want <= 5", len(match.MatchingKeywords))
	}
}

func TestDetectDuplicates_Unrelated(t *testing.T) {
	existing := []models.Document{
		{
			ID:          "issue-1",
			Title:       "No internet connection",
			Description: "WiFi is not working",
			Status:      models.StatusReported,
		},
	}
	d := newTestDetector(Options{})

	verdict := d.DetectDuplicates(
		"Broken light in corridor The light in the corridor is not working",
		existing,
	)

	if verdict.IsDuplicate {
		t.Errorf("IsDuplicate = true, want false")
	}
	if verdict.SimilarityScore != 0.0 {
		t.Errorf("SimilarityScore = %v, want 0.0", verdict.SimilarityScore)
	}
	if len(verdict.SimilarIssues) != 0 {
		t.Errorf("SimilarIssues = %v, want empty", verdict.SimilarIssues)
	}
}

func TestDetectDuplicates_EmptyQuery(t *testing.T) {
	existing := []models.Document{
		{ID: "issue-1", Title: "Leaking tap", Description: "in bathroom", Status: models.StatusReported},
	}
	d := newTestDetector(Options{})

	// An empty query yields a zero vector; must not error or match.
	verdict := d.DetectDuplicates("", existing)

	if verdict.IsDuplicate {
		t.Errorf("IsDuplicate = true, want false")
	}
	if len(verdict.SimilarIssues) != 0 {
		t.Errorf("SimilarIssues = %v, want empty", verdict.SimilarIssues)
	}
}

func TestDetectDuplicates_FailOpen(t *testing.T) {
	// Every document normalizes to nothing, so the model cannot be fit.
	existing := []models.Document{
		{ID: "issue-1", Title: "!!!", Description: "???", Status: models.StatusReported},
	}
	d := newTestDetector(Options{})

	verdict := d.DetectDuplicates("...", existing)

	if verdict.IsDuplicate {
		t.Errorf("IsDuplicate = true, want false")
	}
	if verdict.SimilarityScore != 0.0 {
		t.Errorf("SimilarityScore = %v, want 0.0", verdict.SimilarityScore)
	}
	if verdict.SimilarIssues == nil || len(verdict.SimilarIssues) != 0 {
		t.Errorf("SimilarIssues = %v, want empty non-nil", verdict.SimilarIssues)
	}
}

func TestDetectDuplicates_TruncatesToTopFive(t *testing.T) {
	text := "Leaking tap in bathroom The tap is leaking continuously"
	var existing []models.Document
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		existing = append(existing, models.Document{
			ID:          id,
			Title:       "Leaking tap in bathroom",
			Description: "The tap is leaking continuously",
			Status:      models.StatusReported,
		})
	}
	d := newTestDetector(Options{})

	verdict := d.DetectDuplicates(text, existing)

	if !verdict.IsDuplicate {
		t.Fatalf("IsDuplicate = false, want true")
	}
	if len(verdict.SimilarIssues) != 5 {
		t.Fatalf("len(SimilarIssues) = %d, want 5", len(verdict.SimilarIssues))
	}
	// Equal scores keep corpus order.
	for i, wantID := range []string{"a", "b", "c", "d", "e"} {
		if verdict.SimilarIssues[i].ID != wantID {
			t.Errorf("SimilarIssues[%d].ID = %q, want %q", i, verdict.SimilarIssues[i].ID, wantID)
		}
	}
}

func TestDetectDuplicates_SortedDescending(t *testing.T) {
	existing := []models.Document{
		{ID: "low", Title: "Broken window", Description: "Glass cracked in common room", Status: models.StatusReported},
		{ID: "high", Title: "Leaking tap in bathroom", Description: "Water everywhere from the tap", Status: models.StatusReported},
		{ID: "mid", Title: "Leaking pipe", Description: "Water leaking near bathroom", Status: models.StatusInProgress},
	}
	d := newTestDetector(Options{SimilarityThreshold: 0.05})

	verdict := d.DetectDuplicates("Leaking tap in bathroom water everywhere", existing)

	if !verdict.IsDuplicate {
		t.Fatalf("IsDuplicate = false, want true")
	}
	for i := 1; i < len(verdict.SimilarIssues); i++ {
		prev := verdict.SimilarIssues[i-1].SimilarityScore
		cur := verdict.SimilarIssues[i].SimilarityScore
		if cur > prev {
			t.Errorf("SimilarIssues not sorted: [%d]=%v > [%d]=%v", i, cur, i-1, prev)
		}
	}
	for _, m := range verdict.SimilarIssues {
		if m.SimilarityScore < 0.05 {
			t.Errorf("match %q below threshold: %v", m.ID, m.SimilarityScore)
		}
	}
	if verdict.SimilarIssues[0].ID != "high" {
		t.Errorf("best match = %q, want high", verdict.SimilarIssues[0].ID)
	}
	if verdict.SimilarityScore != verdict.SimilarIssues[0].SimilarityScore {
		t.Errorf("top-level score %v != best match score %v",
			verdict.SimilarityScore, verdict.SimilarIssues[0].SimilarityScore)
	}
}

func TestDetectDuplicates_ThresholdFilters(t *testing.T) {
	existing := []models.Document{
		{ID: "dup", Title: "Leaking tap", Description: "The tap is leaking", Status: models.StatusReported},
		{ID: "other", Title: "Broken fan", Description: "Ceiling fan stopped spinning", Status: models.StatusReported},
	}
	d := newTestDetector(Options{})

	verdict := d.DetectDuplicates("Leaking tap The tap is leaking", existing)

	if len(verdict.SimilarIssues) != 1 {
		t.Fatalf("len(SimilarIssues) = %d, want 1", len(verdict.SimilarIssues))
	}
	if verdict.SimilarIssues[0].ID != "dup" {
		t.Errorf("match ID = %q, want dup", verdict.SimilarIssues[0].ID)
	}
}

func TestDetectDuplicates_PercentageMatchesScore(t *testing.T) {
	existing := []models.Document{
		{ID: "a", Title: "Leaking tap in bathroom", Description: "Water dripping all night", Status: models.StatusReported},
		{ID: "b", Title: "Tap leaking", Description: "Bathroom tap drips", Status: models.StatusReported},
	}
	d := newTestDetector(Options{SimilarityThreshold: 0.05})

	verdict := d.DetectDuplicates("Leaking tap in the bathroom dripping water", existing)

	for _, m := range verdict.SimilarIssues {
		want := math.Round(m.SimilarityScore*100*10) / 10
		if m.SimilarityPercentage != want {
			t.Errorf("SimilarityPercentage = %v, want %v", m.SimilarityPercentage, want)
		}
		if m.SimilarityScore < 0 || m.SimilarityScore > 1 {
			t.Errorf("SimilarityScore = %v, out of [0,1]", m.SimilarityScore)
		}
	}
}

func TestDetectDuplicates_ExcerptLength(t *testing.T) {
	existing := []models.Document{
		{
			ID:          "long",
			Title:       "Leaking tap",
			Description: strings.Repeat("the tap is leaking ", 30),
			Status:      models.StatusReported,
		},
	}
	d := newTestDetector(Options{SimilarityThreshold: 0.3})

	verdict := d.DetectDuplicates("Leaking tap the tap is leaking", existing)

	if len(verdict.SimilarIssues) != 1 {
		t.Fatalf("len(SimilarIssues) = %d, want 1", len(verdict.SimilarIssues))
	}
	desc := verdict.SimilarIssues[0].Description
	if len([]rune(desc)) > 203 {
		t.Errorf("excerpt length = %d, want <= 203", len([]rune(desc)))
	}
	if !strings.HasSuffix(desc, "...") {
		t.Errorf("excerpt missing suffix: %q", desc)
	}
}

func TestCheckIssue(t *testing.T) {
	existing := []models.Document{
		{ID: "issue-1", Title: "Leaking tap in bathroom", Description: "The tap is leaking continuously", Status: models.StatusReported},
	}
	d := newTestDetector(Options{})

	verdict := d.CheckIssue("Leaking tap in bathroom", "The tap is leaking continuously", existing)

	if !verdict.IsDuplicate {
		t.Errorf("IsDuplicate = false, want true")
	}
}

func TestDetectDuplicates_MatchingKeywordsSubset(t *testing.T) {
	newText := "Leaking tap in bathroom The tap in the bathroom is leaking continuously"
	existing := []models.Document{
		{ID: "issue-1", Title: "Leaking tap in bathroom", Description: "The tap in the bathroom is leaking continuously", Status: models.StatusReported},
	}
	d := newTestDetector(Options{})

	verdict := d.DetectDuplicates(newText, existing)
	if len(verdict.SimilarIssues) != 1 {
		t.Fatalf("len(SimilarIssues) = %d, want 1", len(verdict.SimilarIssues))
	}

	keywordsNew := d.ExtractKeywords(newText, 10)
	keywordsDoc := d.ExtractKeywords(existing[0].CombinedText(), 10)
	inBoth := func(k string) bool {
		found := func(list []string) bool {
			for _, v := range list {
				if v == k {
					return true
				}
			}
			return false
		}
		return found(keywordsNew) && found(keywordsDoc)
	}

	for _, k := range verdict.SimilarIssues[0].MatchingKeywords {
		if !inBoth(k) {
			t.Errorf("matching keyword %q not in both keyword sets", k)
		}
	}
}
