package faq

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and extracts maximal runs of letters, digits
// and underscores in order of appearance. Everything else separates
// tokens.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	var tokens []string
	var current strings.Builder
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// TokenSet returns the distinct tokens of text.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
