package faq

import "context"

// TrendStore aggregates query counters behind the trending endpoint.
type TrendStore interface {
	IncrementQuery(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
}
