package dataset

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileSourceSeedsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	source := NewFileSource(path, testLogger())

	entries, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// The seed must also have been written to disk.
	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, entries, again)
}

func TestFileSourceLoadsExistingDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	payload := `[
		{"questions": ["Where is my order?"], "answer": "Check the tracking link in your confirmation email.", "category": "orders"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	entries, err := NewFileSource(path, testLogger()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "orders", entries[0].Category)
}

func TestFileSourceSkipsMalformedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	payload := `[
		{"questions": ["Where is my order?"], "answer": "Check your email.", "category": "orders"},
		{"questions": "not-a-list", "answer": "broken", "category": "broken"},
		{"answer": "no questions at all", "category": "broken"},
		{"questions": ["Do you ship abroad?"], "answer": "Yes, worldwide.", "category": "shipping"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	entries, err := NewFileSource(path, testLogger()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "orders", entries[0].Category)
	require.Equal(t, "shipping", entries[1].Category)
}

func TestFileSourceRejectsUnparseableDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileSource(path, testLogger()).Load(context.Background())
	require.Error(t, err)
}
