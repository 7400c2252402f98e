package faq

// DefaultThreshold is the minimum score either matching signal must
// reach before a question qualifies as a candidate.
const DefaultThreshold = 70

// DefaultBaseSuggestions are the storefront questions offered when the
// catalog has nothing related to propose.
var DefaultBaseSuggestions = []string{
	"What are your shipping policies?",
	"Do you offer refunds?",
	"Tell me about your products",
	"What payment methods do you accept?",
}

// Config holds runtime knobs for the FAQ matching service.
type Config struct {
	Threshold       int
	BaseSuggestions []string
	TopTrending     int
}

func (c Config) withDefaults() Config {
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	if len(c.BaseSuggestions) < 2 {
		c.BaseSuggestions = DefaultBaseSuggestions
	}
	if c.TopTrending <= 0 {
		c.TopTrending = 10
	}
	return c
}
