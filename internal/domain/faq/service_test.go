package faq

import (
	"context"
	"errors"
	"testing"
)

type stubSource struct {
	entries []CatalogEntry
	err     error
	calls   int
}

func (s *stubSource) Load(context.Context) ([]CatalogEntry, error) {
	s.calls++
	return s.entries, s.err
}

type stubStore struct {
	increments map[string]int64
	displays   map[string]string
	incErr     error
	topErr     error
}

func newStubStore() *stubStore {
	return &stubStore{increments: make(map[string]int64), displays: make(map[string]string)}
}

func (s *stubStore) IncrementQuery(_ context.Context, canonical, display string) error {
	if s.incErr != nil {
		return s.incErr
	}
	s.increments[canonical]++
	s.displays[canonical] = display
	return nil
}

func (s *stubStore) TopQueries(context.Context, int) ([]TrendingQuery, error) {
	if s.topErr != nil {
		return nil, s.topErr
	}
	out := make([]TrendingQuery, 0, len(s.increments))
	for canonical, count := range s.increments {
		out = append(out, TrendingQuery{Query: s.displays[canonical], Count: count})
	}
	return out, nil
}

func newTestService(t *testing.T, source CatalogSource, store TrendStore) Service {
	t.Helper()
	return NewService(context.Background(), Config{}, source, store, discardLogger())
}

func TestServiceResolveMatch(t *testing.T) {
	store := newStubStore()
	svc := newTestService(t, &stubSource{entries: testEntries()}, store)

	match, ok := svc.Resolve(context.Background(), "Do you offer refunds?")
	if !ok {
		t.Fatalf("expected a match")
	}
	if match.Category != "returns" {
		t.Fatalf("expected returns category got %q", match.Category)
	}
	if store.increments["do you offer refunds"] != 1 {
		t.Fatalf("expected trending increment, got %v", store.increments)
	}
}

func TestServiceResolveMissSkipsTrending(t *testing.T) {
	store := newStubStore()
	svc := newTestService(t, &stubSource{entries: testEntries()}, store)

	if _, ok := svc.Resolve(context.Background(), "what is the meaning of life"); ok {
		t.Fatalf("expected no match")
	}
	if len(store.increments) != 0 {
		t.Fatalf("miss must not count toward trending, got %v", store.increments)
	}
}

func TestServiceResolveSurvivesStoreFailure(t *testing.T) {
	store := newStubStore()
	store.incErr = errors.New("store down")
	svc := newTestService(t, &stubSource{entries: testEntries()}, store)

	if _, ok := svc.Resolve(context.Background(), "Do you offer refunds?"); !ok {
		t.Fatalf("store failure must not break resolution")
	}
}

func TestServiceStartsEmptyOnSourceFailure(t *testing.T) {
	svc := newTestService(t, &stubSource{err: errors.New("dataset missing")}, newStubStore())

	if _, ok := svc.Resolve(context.Background(), "Do you offer refunds?"); ok {
		t.Fatalf("expected no match against empty catalog")
	}
	got := svc.Suggest(context.Background(), "Do you offer refunds?")
	if len(got) != 2 {
		t.Fatalf("expected base suggestions on empty catalog got %v", got)
	}
}

func TestServiceReloadSwapsSnapshot(t *testing.T) {
	source := &stubSource{entries: nil}
	svc := newTestService(t, source, newStubStore())

	if _, ok := svc.Resolve(context.Background(), "Payment options"); ok {
		t.Fatalf("expected miss before reload")
	}

	source.entries = testEntries()
	stats, err := svc.Reload(context.Background())
	if err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}
	if stats.Entries != 3 || stats.Questions != 9 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if _, ok := svc.Resolve(context.Background(), "Payment options"); !ok {
		t.Fatalf("expected match after reload")
	}
}

func TestServiceTrending(t *testing.T) {
	store := newStubStore()
	svc := newTestService(t, &stubSource{entries: testEntries()}, store)

	svc.Resolve(context.Background(), "Do you offer refunds?")
	svc.Resolve(context.Background(), "do you offer refunds")

	items, err := svc.Trending(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Count != 2 {
		t.Fatalf("expected one canonical query counted twice, got %v", items)
	}
}

func TestServiceTrendingStoreError(t *testing.T) {
	store := newStubStore()
	store.topErr = errors.New("store down")
	svc := newTestService(t, &stubSource{entries: testEntries()}, store)

	if _, err := svc.Trending(context.Background()); err == nil {
		t.Fatalf("expected error from trending")
	}
}
