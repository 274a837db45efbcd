// Package textproc holds the deterministic text-cleaning pass applied to
// every document before comparison, plus the tokenizer the term-weighting
// model is built on.
package textproc

import "strings"

// Normalize lower-cases text, replaces every character outside [a-z0-9] and
// whitespace with a space, and collapses whitespace runs to single spaces.
// Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// JoinTitleBody combines an issue's title and description into the single
// text unit the engine compares.
func JoinTitleBody(title, body string) string {
	return title + " " + body
}
