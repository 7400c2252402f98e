package faq

import "sort"

const (
	relatedPerKeyword = 2
	maxRelated        = 2
	maxBase           = 2
)

// suggest blends catalog questions related to the input with the
// leading base suggestions. Input tokens are walked in sorted order and
// candidates dedupe through an insertion-ordered list, so the same
// input and catalog always produce the same output. The order itself is
// not part of the contract.
func suggest(input string, catalog *Catalog, base []string) []string {
	related := relatedQuestions(input, catalog)
	if len(related) > maxRelated {
		related = related[:maxRelated]
	}

	out := make([]string, 0, maxRelated+maxBase)
	chosen := make(map[string]struct{}, maxRelated+maxBase)
	for _, question := range related {
		if _, dup := chosen[question]; dup {
			continue
		}
		chosen[question] = struct{}{}
		out = append(out, question)
	}
	for i, question := range base {
		if i == maxBase {
			break
		}
		if _, dup := chosen[question]; dup {
			continue
		}
		chosen[question] = struct{}{}
		out = append(out, question)
	}
	return out
}

func relatedQuestions(input string, catalog *Catalog) []string {
	if catalog == nil {
		return nil
	}
	tokenSet := TokenSet(input)
	tokens := make([]string, 0, len(tokenSet))
	for token := range tokenSet {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	seen := make(map[string]struct{})
	var related []string
	for _, token := range tokens {
		bucket := catalog.QuestionsFor(token)
		if len(bucket) > relatedPerKeyword {
			bucket = bucket[:relatedPerKeyword]
		}
		for _, question := range bucket {
			if _, dup := seen[question]; dup {
				continue
			}
			seen[question] = struct{}{}
			related = append(related, question)
		}
	}
	return related
}
