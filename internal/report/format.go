// Package report renders duplicate-check verdicts for humans.
package report

import (
	"fmt"
	"strings"

	"github.com/hostelfix/dupcheck/pkg/models"
)

// statusLabels maps stored status values to display labels.
var statusLabels = map[string]string{
	models.StatusReported:   "Reported",
	models.StatusInProgress: "In Progress",
	models.StatusResolved:   "Resolved",
	models.StatusClosed:     "Closed",
}

// FormatVerdict renders a verdict as a readable report for the terminal.
func FormatVerdict(verdict models.SimilarityVerdict) string {
	var sb strings.Builder

	if !verdict.IsDuplicate {
		sb.WriteString("No similar issues found.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Possible duplicate (best match %.1f%%). Found %d similar issue(s):\n\n",
		verdict.SimilarityScore*100, len(verdict.SimilarIssues)))

	for i, m := range verdict.SimilarIssues {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, m.Title))
		sb.WriteString(fmt.Sprintf("   ID: %s | Similarity: %.1f%% | Status: %s\n",
			m.ID, m.SimilarityPercentage, StatusLabel(m.Status)))
		if len(m.MatchingKeywords) > 0 {
			sb.WriteString(fmt.Sprintf("   Matching keywords: %s\n", strings.Join(m.MatchingKeywords, ", ")))
		}
		sb.WriteString(fmt.Sprintf("   %s\n\n", m.Description))
	}

	return sb.String()
}

// FormatKeywords renders a keyword list, one per line with its rank.
func FormatKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return "No keywords extracted.\n"
	}

	var sb strings.Builder
	for i, k := range keywords {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, k))
	}
	return sb.String()
}

// StatusLabel returns the display label for a status value.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
