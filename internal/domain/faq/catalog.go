package faq

import "log/slog"

// Catalog is an immutable snapshot of the question/answer dataset
// prepared for matching. Once built it is never mutated, so concurrent
// readers need no locking.
type Catalog struct {
	records      map[string]QuestionRecord
	keywordIndex map[string][]string
	questions    []string
	entries      int
}

// BuildCatalog indexes the dataset in a single pass. When two entries
// carry the identical question text the later one wins; the collision
// is logged because it usually signals a dataset quality problem.
func BuildCatalog(entries []CatalogEntry, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{
		records:      make(map[string]QuestionRecord),
		keywordIndex: make(map[string][]string),
		entries:      len(entries),
	}
	for _, entry := range entries {
		for _, question := range entry.Questions {
			keywords := TokenSet(question)
			if _, exists := c.records[question]; exists {
				logger.Warn("duplicate question text in catalog, later entry wins", "question", question)
			} else {
				c.questions = append(c.questions, question)
			}
			c.records[question] = QuestionRecord{
				Answer:   entry.Answer,
				Category: entry.Category,
				Keywords: keywords,
			}
			for keyword := range keywords {
				c.keywordIndex[keyword] = append(c.keywordIndex[keyword], question)
			}
		}
	}
	return c
}

// Questions returns the known question texts in catalog iteration order.
func (c *Catalog) Questions() []string {
	return c.questions
}

// Record returns the stored record for the exact question text.
func (c *Catalog) Record(question string) (QuestionRecord, bool) {
	record, ok := c.records[question]
	return record, ok
}

// QuestionsFor returns the questions containing the given token, in
// catalog iteration order.
func (c *Catalog) QuestionsFor(token string) []string {
	return c.keywordIndex[token]
}

// Stats reports the size of the snapshot.
func (c *Catalog) Stats() CatalogStats {
	return CatalogStats{
		Entries:   c.entries,
		Questions: len(c.questions),
		Keywords:  len(c.keywordIndex),
	}
}
