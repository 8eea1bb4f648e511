package news

import (
	"strings"
	"unicode"
)

// NormalizeLight lowercases text and collapses whitespace runs.
// Used for keyword substring containment.
func NormalizeLight(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeStrict lowercases text and turns every run of characters that are
// not letters or digits into a single space. Used for token-set similarity.
func NormalizeStrict(text string) string {
	b := make([]rune, 0, len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b = append(b, r)
		} else {
			b = append(b, ' ')
		}
	}
	return strings.Join(strings.Fields(string(b)), " ")
}

// wordSet splits strictly-normalized text into its distinct words.
func wordSet(text string) map[string]struct{} {
	words := strings.Fields(NormalizeStrict(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
