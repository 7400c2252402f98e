package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/quickshop/assistant/internal/domain/faq"
)

// FileSource loads the catalog from a JSON file on disk, seeding the
// default dataset when the file does not exist yet.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource constructs the source.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{path: path, logger: logger.With("component", "dataset.file")}
}

// Load implements faq.CatalogSource.
func (s *FileSource) Load(_ context.Context) ([]faq.CatalogEntry, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		s.logger.Info("dataset file missing, seeding defaults", "path", s.path)
		if err := s.writeDefault(); err != nil {
			s.logger.Warn("failed to seed dataset file, serving built-in entries", "error", err)
			return DefaultEntries(), nil
		}
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return decodeEntries(data, s.logger)
}

func (s *FileSource) writeDefault() error {
	payload, err := json.MarshalIndent(DefaultEntries(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, payload, 0o644)
}

var _ faq.CatalogSource = (*FileSource)(nil)
