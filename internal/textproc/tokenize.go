package textproc

import "strings"

// Tokenize splits normalized text into tokens of at least two characters
// with stop words removed. The input is expected to already be normalized;
// callers pass raw text through Normalize first.
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if IsStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Terms expands tokens into the model's term sequence: every unigram plus
// every adjacent bigram (joined with a single space). Bigrams are formed
// after stop-word removal, so "tap is leaking" yields the bigram
// "tap leaking".
func Terms(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// ExtractTerms runs the full raw-text to term-sequence path.
func ExtractTerms(text string) []string {
	return Terms(Tokenize(Normalize(text)))
}
