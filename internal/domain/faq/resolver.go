package faq

type candidate struct {
	question string
	score    float64
}

// resolve fuses the best pure fuzzy match with keyword-overlap
// candidates and picks a single winner above the threshold. A miss is
// an ordinary result, not an error.
func resolve(input string, catalog *Catalog, threshold int) (Match, bool) {
	if catalog == nil {
		return Match{}, false
	}
	inputTokens := TokenSet(input)
	if len(inputTokens) == 0 || len(catalog.questions) == 0 {
		return Match{}, false
	}

	var pool []candidate

	// Direct fuzzy candidate: strict max over catalog iteration order,
	// so the first question encountered wins ties.
	bestQuestion := ""
	bestScore := -1
	for _, question := range catalog.questions {
		if score := tokenSortRatio(input, question); score > bestScore {
			bestQuestion, bestScore = question, score
		}
	}
	if bestScore >= threshold {
		pool = append(pool, candidate{question: bestQuestion, score: float64(bestScore)})
	}

	// Keyword-overlap candidates. A single shared token is rejected as
	// a coincidence; the score is the overlap share of the input tokens.
	for _, question := range catalog.questions {
		record := catalog.records[question]
		overlap := 0
		for token := range inputTokens {
			if _, ok := record.Keywords[token]; ok {
				overlap++
			}
		}
		if overlap <= 1 {
			continue
		}
		score := float64(overlap) / float64(len(inputTokens)) * 100
		if score >= float64(threshold) {
			pool = append(pool, candidate{question: question, score: score})
		}
	}

	if len(pool) == 0 {
		return Match{}, false
	}

	winner := pool[0]
	for _, cand := range pool[1:] {
		if cand.score > winner.score {
			winner = cand
		}
	}
	record := catalog.records[winner.question]
	return Match{
		Question: winner.question,
		Answer:   record.Answer,
		Category: record.Category,
		Score:    int(winner.score),
	}, true
}
