package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Issue status values as stored by the hostel backend.
const (
	StatusReported   = "reported"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Issue categories used by the hostel backend.
const (
	CategoryPlumbing   = "plumbing"
	CategoryElectrical = "electrical"
	CategoryCarpentry  = "carpentry"
	CategoryCleaning   = "cleaning"
	CategoryInternet   = "internet"
	CategoryOther      = "other"
)

// Document is a single issue under comparison. The detection engine never
// mutates a Document.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// CombinedText returns the text the engine compares: title and description
// joined with a single space.
func (d *Document) CombinedText() string {
	return d.Title + " " + d.Description
}

// IsOpen reports whether the issue still belongs in the duplicate-check
// corpus.
func (d *Document) IsOpen() bool {
	return d.Status != StatusClosed
}

// DocumentUUID generates a deterministic UUID from the issue's location and
// sequence number. Used when an exported record carries no id of its own.
func DocumentUUID(hostel, block, room string, seq int) string {
	data := fmt.Sprintf("%s/%s/%s#%d", hostel, block, room, seq)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(data)).String()
}

// Excerpt returns the first max runes of s with a literal "..." suffix.
// The suffix is always appended, matching the stored report format.
func Excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes) + "..."
}
