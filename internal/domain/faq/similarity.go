package faq

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// tokenSortRatio compares two strings after sorting their tokens, so
// word order never affects the score. The result is a Levenshtein ratio
// scaled to [0,100].
func tokenSortRatio(a, b string) int {
	ca := canonicalize(a)
	cb := canonicalize(b)
	if ca == "" && cb == "" {
		return 100
	}
	if ca == "" || cb == "" {
		return 0
	}
	distance := levenshtein.ComputeDistance(ca, cb)
	longest := len([]rune(ca))
	if lb := len([]rune(cb)); lb > longest {
		longest = lb
	}
	return int(math.Round(100 * (1 - float64(distance)/float64(longest))))
}

func canonicalize(s string) string {
	tokens := Tokenize(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
