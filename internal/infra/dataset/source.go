package dataset

import (
	"encoding/json"
	"log/slog"

	"github.com/quickshop/assistant/internal/domain/faq"
)

// DefaultEntries seed a fresh install when no dataset exists yet.
func DefaultEntries() []faq.CatalogEntry {
	return []faq.CatalogEntry{
		{
			Questions: []string{"What are your shipping policies?", "How do you handle shipping?", "Tell me about delivery"},
			Answer:    "We offer free shipping on orders over $50. Standard shipping takes 3-5 business days, while express shipping takes 1-2 business days.",
			Category:  "shipping",
		},
		{
			Questions: []string{"Do you offer refunds?", "What's your return policy?", "Can I return items?"},
			Answer:    "Yes, we offer a 30-day money-back guarantee on all purchases. Items must be in original condition with tags attached.",
			Category:  "returns",
		},
		{
			Questions: []string{"What payment methods do you accept?", "How can I pay?", "Payment options"},
			Answer:    "We accept all major credit cards (Visa, MasterCard, American Express), PayPal, and Apple Pay.",
			Category:  "payment",
		},
	}
}

// decodeEntries parses the dataset JSON. Malformed records are skipped
// with a warning so a single bad row cannot take down the catalog.
func decodeEntries(data []byte, logger *slog.Logger) ([]faq.CatalogEntry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	entries := make([]faq.CatalogEntry, 0, len(raw))
	for i, msg := range raw {
		var entry faq.CatalogEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			logger.Warn("skipping malformed catalog record", "index", i, "error", err)
			continue
		}
		if len(entry.Questions) == 0 {
			logger.Warn("skipping catalog record without questions", "index", i)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
