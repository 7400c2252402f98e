package faq

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	apperrors "github.com/quickshop/assistant/pkg/errors"
)

// Service answers storefront questions from the indexed catalog.
type Service interface {
	Resolve(ctx context.Context, message string) (Match, bool)
	Suggest(ctx context.Context, message string) []string
	Trending(ctx context.Context) ([]TrendingQuery, error)
	Reload(ctx context.Context) (CatalogStats, error)
}

// CatalogSource supplies dataset entries for building catalog snapshots.
type CatalogSource interface {
	Load(ctx context.Context) ([]CatalogEntry, error)
}

type service struct {
	cfg     Config
	source  CatalogSource
	store   TrendStore
	logger  *slog.Logger
	catalog atomic.Pointer[Catalog]
}

// NewService wires up the FAQ domain and loads the initial catalog
// snapshot. A broken dataset degrades to an empty catalog instead of
// blocking startup.
func NewService(ctx context.Context, cfg Config, source CatalogSource, store TrendStore, logger *slog.Logger) Service {
	s := &service{
		cfg:    cfg.withDefaults(),
		source: source,
		store:  store,
		logger: logger.With("component", "faq.service"),
	}
	if _, err := s.Reload(ctx); err != nil {
		s.logger.Error("initial catalog load failed, starting empty", "error", err)
		s.catalog.Store(BuildCatalog(nil, s.logger))
	}
	return s
}

// Resolve returns the best stored answer for the message, or a miss.
// Failures inside matching never escape; they are logged and reported
// as a miss.
func (s *service) Resolve(ctx context.Context, message string) (match Match, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("resolve failed, treating as no match", "panic", r)
			match, ok = Match{}, false
		}
	}()

	match, ok = resolve(message, s.catalog.Load(), s.cfg.Threshold)
	if !ok {
		return Match{}, false
	}

	canonical := strings.Join(Tokenize(message), " ")
	if err := s.store.IncrementQuery(ctx, canonical, strings.TrimSpace(message)); err != nil {
		s.logger.Warn("trending increment failed", "error", err)
	}
	return match, true
}

// Suggest returns related questions for the message. On any internal
// failure it falls back to the first two base suggestions.
func (s *service) Suggest(_ context.Context, message string) (out []string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("suggest failed, returning fallback", "panic", r)
			out = append([]string(nil), s.cfg.BaseSuggestions[:maxBase]...)
		}
	}()

	return suggest(message, s.catalog.Load(), s.cfg.BaseSuggestions)
}

func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	items, err := s.store.TopQueries(ctx, s.cfg.TopTrending)
	if err != nil {
		return nil, apperrors.Wrap("faq_error", "failed to load trending queries", err)
	}
	return items, nil
}

// Reload builds a fresh catalog snapshot from the source and swaps it
// in atomically. Requests in flight keep reading the snapshot they
// started with.
func (s *service) Reload(ctx context.Context) (CatalogStats, error) {
	entries, err := s.source.Load(ctx)
	if err != nil {
		return CatalogStats{}, apperrors.Wrap("dataset_error", "failed to load catalog dataset", err)
	}
	catalog := BuildCatalog(entries, s.logger)
	s.catalog.Store(catalog)
	stats := catalog.Stats()
	s.logger.Info("catalog snapshot loaded", "entries", stats.Entries, "questions", stats.Questions, "keywords", stats.Keywords)
	return stats, nil
}
