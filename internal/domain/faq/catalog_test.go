package faq

import (
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEntries() []CatalogEntry {
	return []CatalogEntry{
		{
			Questions: []string{"What are your shipping policies?", "How do you handle shipping?", "Tell me about delivery"},
			Answer:    "We offer free shipping on orders over $50.",
			Category:  "shipping",
		},
		{
			Questions: []string{"Do you offer refunds?", "What's your return policy?", "Can I return items?"},
			Answer:    "Yes, we offer a 30-day money-back guarantee.",
			Category:  "returns",
		},
		{
			Questions: []string{"What payment methods do you accept?", "How can I pay?", "Payment options"},
			Answer:    "We accept all major credit cards, PayPal, and Apple Pay.",
			Category:  "payment",
		},
	}
}

func TestBuildCatalogRecords(t *testing.T) {
	catalog := BuildCatalog(testEntries(), discardLogger())

	if got := len(catalog.Questions()); got != 9 {
		t.Fatalf("expected 9 questions got %d", got)
	}

	record, ok := catalog.Record("Do you offer refunds?")
	if !ok {
		t.Fatalf("expected record for refund question")
	}
	if record.Category != "returns" {
		t.Fatalf("expected category returns got %q", record.Category)
	}
	for _, token := range []string{"do", "you", "offer", "refunds"} {
		if _, ok := record.Keywords[token]; !ok {
			t.Fatalf("expected keyword %q", token)
		}
	}
}

func TestBuildCatalogKeywordIndexOrder(t *testing.T) {
	catalog := BuildCatalog(testEntries(), discardLogger())

	bucket := catalog.QuestionsFor("shipping")
	if len(bucket) != 2 {
		t.Fatalf("expected 2 questions for token shipping got %d", len(bucket))
	}
	if bucket[0] != "What are your shipping policies?" || bucket[1] != "How do you handle shipping?" {
		t.Fatalf("unexpected bucket order: %v", bucket)
	}
}

func TestBuildCatalogLastWriteWins(t *testing.T) {
	entries := []CatalogEntry{
		{Questions: []string{"Payment options"}, Answer: "first", Category: "payment"},
		{Questions: []string{"Payment options"}, Answer: "second", Category: "billing"},
	}
	catalog := BuildCatalog(entries, discardLogger())

	record, ok := catalog.Record("Payment options")
	if !ok {
		t.Fatalf("expected record for duplicated question")
	}
	if record.Answer != "second" || record.Category != "billing" {
		t.Fatalf("expected later entry to win, got %+v", record)
	}
	if got := len(catalog.Questions()); got != 1 {
		t.Fatalf("expected single question entry got %d", got)
	}
}

func TestBuildCatalogEmpty(t *testing.T) {
	catalog := BuildCatalog(nil, discardLogger())
	if got := len(catalog.Questions()); got != 0 {
		t.Fatalf("expected empty catalog got %d questions", got)
	}
	stats := catalog.Stats()
	if stats.Entries != 0 || stats.Questions != 0 || stats.Keywords != 0 {
		t.Fatalf("expected zero stats got %+v", stats)
	}
}
