package nlp

import "strings"

// Stop words filtered out during normalization.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "were": true, "to": true, "of": true, "and": true, "or": true,
	"in": true, "that": true, "this": true, "these": true, "those": true,
	"have": true, "has": true, "it": true, "its": true, "for": true,
	"not": true, "on": true, "with": true, "as": true, "you": true,
	"do": true, "does": true, "at": true, "but": true, "by": true,
	"from": true, "how": true, "what": true, "which": true, "who": true,
	"will": true, "can": true, "so": true, "if": true, "then": true,
}

// IsStopWord reports whether the (already lowercased) token is a stop word.
func IsStopWord(token string) bool {
	return stopWords[token]
}

// Normalize splits text into tokens, lowercases them, trims surrounding
// punctuation, and removes stop words and empty tokens. It needs no model
// data and is deterministic for identical input.
func Normalize(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// NormalizeSet returns the distinct normalized tokens of text.
func NormalizeSet(text string) map[string]bool {
	tokens := Normalize(text)
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}
