package faq

// CatalogEntry is one dataset record grouping several phrasings of a
// question under a single answer and category.
type CatalogEntry struct {
	Questions []string `json:"questions"`
	Answer    string   `json:"answer"`
	Category  string   `json:"category"`
}

// QuestionRecord is the per-question view derived from the catalog,
// keyed by the exact question text.
type QuestionRecord struct {
	Answer   string
	Category string
	Keywords map[string]struct{}
}

// Match is a successful resolution against the catalog.
type Match struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// CatalogStats summarizes a loaded catalog snapshot.
type CatalogStats struct {
	Entries   int `json:"entries"`
	Questions int `json:"questions"`
	Keywords  int `json:"keywords"`
}
